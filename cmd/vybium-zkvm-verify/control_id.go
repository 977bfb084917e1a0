package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/circuit"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/receipt"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/utils"
)

func newControlIDCmd(cfg *utils.Config) *cobra.Command {
	var po2, cycles int

	cmd := &cobra.Command{
		Use:   "control-id",
		Short: "Print the control ID of a segment circuit",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := circuit.LookupVersion(cfg.Version)
			if !ok {
				return fmt.Errorf("unsupported circuit version %q", cfg.Version)
			}
			if cmd.Flags().Changed("cycles") {
				if po2, ok = circuit.Po2ForCycles(cycles); !ok {
					return fmt.Errorf("no segment holds %d cycles", cycles)
				}
			}
			id, ok := v.ControlID(cfg.HashFunction, po2)
			if !ok {
				return fmt.Errorf("no %s control ID for %s po2 %d", v.Name(), cfg.HashFunction, po2)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().String("hash", cfg.HashFunction, "Hash function (sha-256, poseidon2, blake2b)")
	cmd.Flags().IntVar(&po2, "po2", 0, "Segment size as a power of two")
	cmd.Flags().IntVar(&cycles, "cycles", 0, "Segment cycle count, rounded up to a supported po2")
	cmd.MarkFlagsMutuallyExclusive("po2", "cycles")
	cmd.MarkFlagsOneRequired("po2", "cycles")

	return cmd
}

func newParamsCmd(cfg *utils.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the verifier parameter digests receipts must carry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := receipt.FromConfig(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version:      %s\n", ctx.Version().Name())
			if p, ok := ctx.SegmentParameters(); ok {
				fmt.Fprintf(out, "segment:      %s\n", p.Digest())
			}
			if p, ok := ctx.SuccinctParameters(); ok {
				fmt.Fprintf(out, "succinct:     %s\n", p.Digest())
				fmt.Fprintf(out, "control root: %s\n", p.ControlRoot)
			}
			if p, ok := ctx.CompositeParameters(); ok {
				fmt.Fprintf(out, "composite:    %s\n", p.Digest())
			}
			return nil
		},
	}
}
