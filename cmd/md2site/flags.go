package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that shape the run rather than the site.
type commonFlags struct {
	config  string
	envFile string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// siteFlags holds flags that override site configuration.
type siteFlags struct {
	content string
	output  string
	layouts string
	layout  string
	css     string
	title   string
	serve   bool
	noServe bool
	port    int
}

// cliFlags holds all flags.
type cliFlags struct {
	common commonFlags
	site   siteFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.envFile, "env-file", defaultEnvFile, "file of MD2SITE_* variables to load")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
}

// addSiteFlags adds site configuration flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.content, "content", "", "content directory")
	fs.StringVar(&f.output, "output", "", "output directory")
	fs.StringVar(&f.layouts, "layouts", "", "layouts directory")
	fs.StringVar(&f.layout, "layout", "", "default layout name")
	fs.StringVar(&f.css, "css", "", "stylesheet copied to the output root")
	fs.StringVar(&f.title, "title", "", "site title")
	fs.BoolVar(&f.serve, "serve", false, "serve the site and rebuild on changes")
	fs.BoolVar(&f.noServe, "no-serve", false, "do not serve after building")
	fs.IntVar(&f.port, "port", 0, "preview server port")
}

// parseFlags parses command-line arguments. Unknown flags are ignored.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("md2site", flag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)

	f := &cliFlags{}
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
