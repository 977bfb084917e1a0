package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/engine"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/utils"
	vybiumzkvmverifier "github.com/vybium/vybium-zkvm-verifier/pkg/vybium-zkvm-verifier"
)

func newVerifyCmd(cfg *utils.Config) *cobra.Command {
	var receiptPath, imageIDHex, journalPath, journalDigestHex string
	var devEngine bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify that a receipt proves a program halted with a journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(receiptPath)
			if err != nil {
				return fmt.Errorf("failed to read receipt: %w", err)
			}
			proof, err := vybiumzkvmverifier.DecodeProof(data)
			if err != nil {
				return err
			}

			imageID, err := vybiumzkvmverifier.ParseDigest(imageIDHex)
			if err != nil {
				return fmt.Errorf("invalid image ID: %w", err)
			}

			var journalDigest vybiumzkvmverifier.Digest
			if journalPath != "" {
				journal, err := os.ReadFile(journalPath)
				if err != nil {
					return fmt.Errorf("failed to read journal: %w", err)
				}
				journalDigest = vybiumzkvmverifier.JournalDigest(journal)
			} else {
				journalDigest, err = vybiumzkvmverifier.ParseDigest(journalDigestHex)
				if err != nil {
					return fmt.Errorf("invalid journal digest: %w", err)
				}
			}

			ctx, err := vybiumzkvmverifier.ContextFromConfig(cfg)
			if err != nil {
				return err
			}
			if devEngine {
				log.Warn("Using the development engine, seals are not checked as STARK proofs")
				ctx = ctx.WithEngine(engine.NewCommitment(core.Sha256))
			}

			log.Debug("Verifying receipt", "path", receiptPath, "kind", proof.Inner.Kind(), "version", cfg.Version)
			if err := vybiumzkvmverifier.VerifyWithContext(ctx, proof, imageID, journalDigest); err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			log.Info("Receipt verified", "image", imageID, "journal", journalDigest)
			fmt.Fprintln(cmd.OutOrStdout(), "receipt verified")
			return nil
		},
	}

	cmd.Flags().StringVar(&receiptPath, "receipt", "", "Receipt JSON file")
	cmd.Flags().StringVar(&imageIDHex, "image-id", "", "Expected image ID (hex)")
	cmd.Flags().StringVar(&journalPath, "journal", "", "Expected journal file")
	cmd.Flags().StringVar(&journalDigestHex, "journal-digest", "", "Expected journal SHA-256 digest (hex)")
	cmd.Flags().BoolVar(&devEngine, "dev-engine", false, "Accept development seals (hash commitments, not proofs)")
	_ = cmd.MarkFlagRequired("receipt")
	_ = cmd.MarkFlagRequired("image-id")
	cmd.MarkFlagsMutuallyExclusive("journal", "journal-digest")
	cmd.MarkFlagsOneRequired("journal", "journal-digest")

	return cmd
}
