package claim

import (
	"fmt"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// ReceiptClaim is the public statement a receipt proves about one execution
type ReceiptClaim struct {
	// Pre is the state before execution. Pruned to the image ID for a whole program.
	Pre MaybePruned[SystemState] `json:"pre"`

	// Post is the state after execution
	Post MaybePruned[SystemState] `json:"post"`

	// ExitCode classifies how execution ended
	ExitCode ExitCode `json:"exit_code"`

	// Input commits to the execution input; zero when there is none
	Input core.Digest `json:"input"`

	// Output is the journal and assumptions; nil when there is no output
	Output MaybePruned[*Output] `json:"output"`
}

// Ok builds the claim of a program that halted with code 0 and produced journal
func Ok(imageID core.Digest, journal MaybePruned[Journal]) ReceiptClaim {
	return ReceiptClaim{
		Pre: Pruned[SystemState](imageID),
		Post: Value(SystemState{
			PC:         0,
			MerkleRoot: core.ZeroDigest,
		}),
		ExitCode: ExitHalted(0),
		Input:    core.ZeroDigest,
		Output: Value(&Output{
			Journal:     journal,
			Assumptions: Value(Assumptions{}),
		}),
	}
}

// OkDigest is Ok with a pre-hashed journal
func OkDigest(imageID, journalDigest core.Digest) ReceiptClaim {
	return Ok(imageID, Pruned[Journal](journalDigest))
}

// Digest hashes the claim as a tagged struct
func (c ReceiptClaim) Digest() core.Digest {
	return core.TaggedStruct(
		core.Sha256,
		"risc0.ReceiptClaim",
		[]core.Digest{c.Input, c.Pre.Digest(), c.Post.Digest(), c.Output.Digest()},
		c.ExitCode.Words(),
	)
}

// ImageID returns the digest identifying the executed program
func (c ReceiptClaim) ImageID() core.Digest {
	return c.Pre.Digest()
}

// Assumptions returns the unresolved assumptions of the claim's output. Pruned
// output or assumptions report an error since their entries cannot be checked.
func (c ReceiptClaim) Assumptions() (Assumptions, error) {
	output, err := c.Output.Value()
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	if output == nil {
		return nil, nil
	}
	if output.Assumptions.Digest() == core.ZeroDigest {
		return nil, nil
	}
	assumptions, err := output.Assumptions.Value()
	if err != nil {
		return nil, fmt.Errorf("assumptions: %w", err)
	}
	return assumptions, nil
}

func (c ReceiptClaim) String() string {
	return fmt.Sprintf("ReceiptClaim{image: %s, exit: %s, digest: %s}", c.ImageID(), c.ExitCode, c.Digest())
}
