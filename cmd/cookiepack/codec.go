package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/cookiepack"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "encode [name=value]...",
		Short:   "Print the aggregate cookie token for the given cookies",
		Example: "  cookiepack encode session=abc theme=dark",
		RunE: func(cmd *cobra.Command, args []string) error {
			jar := cookiepack.Jar{}
			for _, arg := range args {
				name, value, ok := strings.Cut(arg, "=")
				if !ok || name == "" {
					return fmt.Errorf("invalid cookie %q: want name=value", arg)
				}
				jar.Set(name, value)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cookiepack.Encode(jar))
			return err
		},
	}
}

func newDecodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decode TOKEN",
		Short: "Print the cookies packed in an aggregate cookie token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jar, err := cookiepack.Decode(args[0])
			if err != nil {
				return err
			}

			var out []byte
			switch strings.ToLower(output) {
			case "json":
				out, err = json.MarshalIndent(jar, "", "  ")
				out = append(out, '\n')
			case "yaml":
				out, err = yaml.Marshal(map[string]string(jar))
			default:
				return fmt.Errorf("unknown output format %q: want json or yaml", output)
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	return cmd
}
