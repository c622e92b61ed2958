package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/MixinNetwork/ratio/config"
	"github.com/MixinNetwork/ratio/logger"
	"github.com/MixinNetwork/ratio/rpc"
	"github.com/MixinNetwork/ratio/storage"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaultRPC := os.Getenv("RATIO_KERNEL_RPC")
	if defaultRPC == "" {
		defaultRPC = fmt.Sprintf("http://127.0.0.1:%d", config.DefaultRPCPort)
	}

	app := cli.NewApp()
	app.Name = "ratio"
	app.Usage = "Exact arbitrary precision rational arithmetic, locally or through a shared register daemon."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "node",
			Aliases: []string{"n"},
			Value:   defaultRPC,
			Usage:   "the RPC endpoint, and the default value is read from environment variable RATIO_KERNEL_RPC",
		},
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "the data directory",
		},
	}
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:    "kernel",
			Aliases: []string{"k"},
			Usage:   "Start the ratio register daemon",
			Action:  kernelCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "dir",
					Aliases: []string{"d"},
					Usage:   "the data directory",
				},
				&cli.IntFlag{
					Name:    "port",
					Aliases: []string{"p"},
					Usage:   "the RPC port to listen, overrides the config file",
				},
				&cli.IntFlag{
					Name:    "log",
					Aliases: []string{"l"},
					Usage:   "the log level, overrides the config file",
				},
				&cli.StringFlag{
					Name:  "filter",
					Usage: "the RE2 regex pattern to filter log",
				},
			},
		},
		{
			Name:      "parse",
			Usage:     "Parse a literal and print its canonical form",
			ArgsUsage: "LITERAL",
			Action:    parseCmd,
		},
		{
			Name:      "add",
			Usage:     "Print the sum of two rationals",
			ArgsUsage: "A B",
			Action:    binaryCmd("add"),
		},
		{
			Name:      "sub",
			Usage:     "Print the difference of two rationals",
			ArgsUsage: "A B",
			Action:    binaryCmd("sub"),
		},
		{
			Name:      "mul",
			Usage:     "Print the product of two rationals",
			ArgsUsage: "A B",
			Action:    binaryCmd("mul"),
		},
		{
			Name:      "div",
			Usage:     "Print the quotient of two rationals",
			ArgsUsage: "A B",
			Action:    binaryCmd("div"),
		},
		{
			Name:      "neg",
			Usage:     "Print the negation of a rational",
			ArgsUsage: "A",
			Action:    negCmd,
		},
		{
			Name:      "compare",
			Usage:     "Print -1, 0 or 1 as A is less than, equal to or greater than B",
			ArgsUsage: "A B",
			Action:    compareCmd,
		},
		{
			Name:      "inrange",
			Usage:     "Print whether LO <= X <= HI",
			ArgsUsage: "X LO HI",
			Action:    inRangeCmd,
		},
		{
			Name:      "decimal",
			Usage:     "Print a rational rounded to decimal places",
			ArgsUsage: "A",
			Action:    decimalCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "places",
					Value: 8,
					Usage: "the decimal places",
				},
			},
		},
		{
			Name:      "fromdecimal",
			Usage:     "Convert a decimal literal to an exact rational",
			ArgsUsage: "DECIMAL",
			Action:    fromDecimalCmd,
		},
		{
			Name:      "setvalue",
			Usage:     "Store a named value in the daemon",
			ArgsUsage: "NAME VALUE",
			Action:    setValueCmd,
		},
		{
			Name:      "getvalue",
			Usage:     "Read a named value from the daemon",
			ArgsUsage: "NAME",
			Action:    getValueCmd,
		},
		{
			Name:      "removevalue",
			Usage:     "Remove a named value from the daemon",
			ArgsUsage: "NAME",
			Action:    removeValueCmd,
		},
		{
			Name:   "listvalues",
			Usage:  "List all named values in the daemon",
			Action: listValuesCmd,
		},
		{
			Name:      "compute",
			Usage:     "Run a computation on the daemon, operands may be $NAME",
			ArgsUsage: "METHOD OPERAND...",
			Action:    computeCmd,
		},
		{
			Name:   "getinfo",
			Usage:  "Get info from the daemon",
			Action: getInfoCmd,
		},
		{
			Name:   "dumpvalues",
			Usage:  "Dump all named values of the data directory to a file",
			Action: dumpValuesCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "file",
					Usage: "the dump file",
				},
			},
		},
		{
			Name:   "loadvalues",
			Usage:  "Load named values from a dump file into the data directory",
			Action: loadValuesCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "file",
					Usage: "the dump file",
				},
			},
		},
	}
	return app
}

func kernelCmd(c *cli.Context) error {
	runtime.GOMAXPROCS(runtime.NumCPU())

	dir := c.String("dir")
	custom, err := config.Initialize(dir + "/config.toml")
	if os.IsNotExist(err) {
		custom, err = config.Default(), nil
	}
	if err != nil {
		return err
	}
	if p := c.Int("port"); p > 0 {
		custom.RPC.Port = p
	}
	if l := c.Int("log"); l > 0 {
		custom.Log.Level = l
	}
	if f := c.String("filter"); f != "" {
		custom.Log.Filter = f
	}

	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	err = logger.SetFilter(custom.Log.Filter)
	if err != nil {
		return err
	}

	store, err := storage.NewBadgerStore(custom, dir)
	if err != nil {
		return err
	}
	defer store.Close()

	server := rpc.NewServer(custom, store, custom.RPC.Port)
	logger.Printf("ratio kernel %s listening on %s\n", config.BuildVersion, server.Addr)
	return server.ListenAndServe()
}
