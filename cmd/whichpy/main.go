// whichpy is the module equivalent of the Unix 'which' command: it prints
// where a module or package would be resolved on the deployment search path,
// without importing or executing anything.
package main

import (
	"errors"
	"fmt"
	"os"

	"sitepath/internal/config"
	"sitepath/internal/site"

	"github.com/spf13/pflag"
)

func run(name string) int {
	cfg := config.Load()
	sp := site.FromEnviron()
	site.Setup(cfg, sp)

	path, err := site.Locate(name, sp.Dirs())
	if err != nil {
		if errors.Is(err, site.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Module '%s' not found\n", name)
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println(path)
	return 0
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: whichpy <module_name>\n\n")
		fmt.Fprintf(os.Stderr, "Tells you where a module or package is located on the module search\n")
		fmt.Fprintf(os.Stderr, "path ($PYTHONPATH plus the deployment tree from $ROOT and friends).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("whichpy version %s\n", site.Version)
		return
	}

	args := pflag.Args()
	if len(args) != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	os.Exit(run(args[0]))
}
