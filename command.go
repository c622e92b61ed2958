package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MixinNetwork/ratio/common"
	"github.com/MixinNetwork/ratio/config"
	"github.com/MixinNetwork/ratio/rpc"
	"github.com/MixinNetwork/ratio/storage"
	"github.com/urfave/cli/v2"
)

func literalArgs(c *cli.Context, n int) ([]common.Rational, error) {
	if c.Args().Len() != n {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", c.Command.Name, n, c.Args().Len())
	}
	values := make([]common.Rational, n)
	for i := range values {
		v, err := common.Parse(c.Args().Get(i))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func parseCmd(c *cli.Context) error {
	args, err := literalArgs(c, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, args[0].String())
	return nil
}

func binaryCmd(method string) cli.ActionFunc {
	return func(c *cli.Context) error {
		args, err := literalArgs(c, 2)
		if err != nil {
			return err
		}
		var v common.Rational
		switch method {
		case "add":
			v = args[0].Add(args[1])
		case "sub":
			v = args[0].Sub(args[1])
		case "mul":
			v = args[0].Mul(args[1])
		case "div":
			v, err = args[0].Div(args[1])
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("invalid method %s", method)
		}
		fmt.Fprintln(c.App.Writer, v.String())
		return nil
	}
}

func negCmd(c *cli.Context) error {
	args, err := literalArgs(c, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, args[0].Neg().String())
	return nil
}

func compareCmd(c *cli.Context) error {
	args, err := literalArgs(c, 2)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, args[0].Cmp(args[1]))
	return nil
}

func inRangeCmd(c *cli.Context) error {
	args, err := literalArgs(c, 3)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, args[0].Within(args[1], args[2]))
	return nil
}

func decimalCmd(c *cli.Context) error {
	args, err := literalArgs(c, 1)
	if err != nil {
		return err
	}
	places := c.Int("places")
	if places < 0 {
		return fmt.Errorf("invalid decimal places %d", places)
	}
	fmt.Fprintln(c.App.Writer, args[0].FloatString(int32(places)))
	return nil
}

func fromDecimalCmd(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("%s expects 1 argument, got %d", c.Command.Name, c.Args().Len())
	}
	v, err := common.NewFromDecimal(c.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, v.String())
	return nil
}

func setValueCmd(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("%s expects 2 arguments, got %d", c.Command.Name, c.Args().Len())
	}
	return printRPC(c, "setvalue", c.Args().Get(0), c.Args().Get(1))
}

func getValueCmd(c *cli.Context) error {
	return printRPC(c, "getvalue", c.Args().First())
}

func removeValueCmd(c *cli.Context) error {
	return printRPC(c, "removevalue", c.Args().First())
}

func listValuesCmd(c *cli.Context) error {
	return printRPC(c, "listvalues")
}

func getInfoCmd(c *cli.Context) error {
	return printRPC(c, "getinfo")
}

func computeCmd(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return fmt.Errorf("%s expects a method", c.Command.Name)
	}
	params := make([]interface{}, 0)
	for _, a := range c.Args().Tail() {
		params = append(params, a)
	}
	return printRPC(c, c.Args().First(), params...)
}

func printRPC(c *cli.Context, method string, params ...interface{}) error {
	data, err := rpc.CallRPC(c.String("node"), method, params)
	if err != nil {
		return err
	}
	var out interface{}
	err = json.Unmarshal(data, &out)
	if err != nil {
		return err
	}
	data, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}

func dumpValuesCmd(c *cli.Context) error {
	store, err := storage.NewBadgerStore(config.Default(), c.String("dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	data, err := store.DumpValues()
	if err != nil {
		return err
	}
	return os.WriteFile(c.String("file"), data, 0644)
}

func loadValuesCmd(c *cli.Context) error {
	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return err
	}
	store, err := storage.NewBadgerStore(config.Default(), c.String("dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.LoadValues(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "loaded %d values\n", n)
	return nil
}
