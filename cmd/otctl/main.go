// Command otctl is a demonstration front end over the ot library: it reads
// a JSON envelope from stdin, runs one of Apply/Compose/Transform (or
// plain canonicalizing re-encode) against it, and prints the result to
// stdout: the resulting text for apply, JSON for the other commands. It is a consumer of the library, not part of the
// core's public interface — the core itself remains a pure value package
// with no CLI, env vars, or persisted state of its own.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	ot "github.com/inkwell-dev/ot"
	"github.com/inkwell-dev/ot/otjson"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("otctl: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "otctl",
		Short: "Apply, compose, and transform OT changesets from JSON on stdin",
	}
	root.AddCommand(newApplyCmd())
	root.AddCommand(newComposeCmd())
	root.AddCommand(newTransformCmd())
	root.AddCommand(newFmtCmd())
	return root
}

// requestID is a per-invocation correlation id, logged the way a server
// would tag a request, kept entirely inside this CLI shim.
func requestID() string {
	return uuid.NewString()
}

func readInput(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse input as JSON: %w", err)
	}
	return nil
}

type applyRequest struct {
	Changeset json.RawMessage `json:"changeset"`
	Text      string          `json:"text"`
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Apply a changeset to text: {\"changeset\": {...}, \"text\": \"...\"}",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := requestID()
			var req applyRequest
			if err := readInput(cmd.InOrStdin(), &req); err != nil {
				return err
			}
			c, err := otjson.Decode(req.Changeset)
			if err != nil {
				return err
			}
			result, err := ot.Apply(c, req.Text)
			if err != nil {
				log.Printf("[%s] apply failed: %v", id, err)
				return err
			}
			log.Printf("[%s] applied changeset (fromLen=%d toLen=%d)", id, c.FromLen(), c.ToLen())
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

type pairRequest struct {
	A json.RawMessage `json:"a"`
	B json.RawMessage `json:"b"`
}

func newComposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose",
		Short: "Compose two changesets: {\"a\": {...}, \"b\": {...}}",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := requestID()
			var req pairRequest
			if err := readInput(cmd.InOrStdin(), &req); err != nil {
				return err
			}
			a, err := otjson.Decode(req.A)
			if err != nil {
				return err
			}
			b, err := otjson.Decode(req.B)
			if err != nil {
				return err
			}
			c, err := ot.Compose(a, b)
			if err != nil {
				log.Printf("[%s] compose failed: %v", id, err)
				return err
			}
			out, err := otjson.Encode(c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newTransformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transform",
		Short: "Transform two concurrent changesets: {\"a\": {...}, \"b\": {...}}",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := requestID()
			var req pairRequest
			if err := readInput(cmd.InOrStdin(), &req); err != nil {
				return err
			}
			a, err := otjson.Decode(req.A)
			if err != nil {
				return err
			}
			b, err := otjson.Decode(req.B)
			if err != nil {
				return err
			}
			aPrime, bPrime, err := ot.Transform(a, b)
			if err != nil {
				log.Printf("[%s] transform failed: %v", id, err)
				return err
			}
			aOut, err := otjson.Encode(aPrime)
			if err != nil {
				return err
			}
			bOut, err := otjson.Encode(bPrime)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), `{"aPrime":%s,"bPrime":%s}`+"\n", aOut, bOut)
			return nil
		},
	}
}

type fmtRequest struct {
	Changeset json.RawMessage `json:"changeset"`
}

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "Canonicalize and re-encode a changeset: {\"changeset\": {...}}",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req fmtRequest
			if err := readInput(cmd.InOrStdin(), &req); err != nil {
				return err
			}
			c, err := otjson.Decode(req.Changeset)
			if err != nil {
				return err
			}
			if c.IsNoop() {
				fmt.Fprintln(cmd.ErrOrStderr(), "changeset is a no-op")
			}
			out, err := otjson.Encode(c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
