// Package client provides commands that drive a remote form server.
//
// The server keeps no form state, so the draft lives in a JSON file that
// every command reads, sends along and rewrites.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// draftPath is the file holding the draft between commands
	draftPath string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Drive a remote form server",
	Long:  `Client commands send form intents to a running server, keeping the draft in a local JSON file.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&draftPath, "draft", "draft.json", "Draft file")

	ClientCmd.AddCommand(createDraftCmd)
	ClientCmd.AddCommand(setFieldCmd)
	ClientCmd.AddCommand(updateStatCmd)
	ClientCmd.AddCommand(addTagCmd)
	ClientCmd.AddCommand(removeTagCmd)
	ClientCmd.AddCommand(rollStatsCmd)
	ClientCmd.AddCommand(previewDraftCmd)
	ClientCmd.AddCommand(submitDraftCmd)
	ClientCmd.AddCommand(listOptionsCmd)
}

// createFormClient creates a form service client
func createFormClient() (*v1alpha1.FormServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewFormServiceClient(conn), cleanup, nil
}

// withClient runs fn against a fresh connection bounded by the request timeout
func withClient(fn func(ctx context.Context, client *v1alpha1.FormServiceClient) error) error {
	client, cleanup, err := createFormClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}

// withDraft loads the draft file before calling the server
func withDraft(fn func(ctx context.Context, client *v1alpha1.FormServiceClient, d *character.Draft) error) error {
	d, err := readDraft(draftPath)
	if err != nil {
		return err
	}
	return withClient(func(ctx context.Context, client *v1alpha1.FormServiceClient) error {
		return fn(ctx, client, d)
	})
}

func saveAndPrint(cmd *cobra.Command, preview string) error {
	if err := writeDraft(draftPath, preview); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), preview)
	return nil
}

// readDraft loads the draft file
func readDraft(path string) (*character.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("no draft at %s, run 'client new' first", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var d character.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "draft file is not valid JSON")
	}
	return &d, nil
}

// writeDraft stores the preview text, which is the indented draft JSON
func writeDraft(path, preview string) error {
	if err := os.WriteFile(path, []byte(preview+"\n"), 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// describe turns a gRPC error into a readable message
func describe(err error) error {
	converted := errors.FromGRPCError(err)
	if fields := errors.InvalidFields(converted); len(fields) > 0 {
		return fmt.Errorf("%s: missing or invalid %v", errors.GetMessage(converted), fields)
	}
	if guess, ok := errors.GetMeta(converted)["suggestion"].(string); ok {
		return fmt.Errorf("%s (did you mean %q?)", errors.GetMessage(converted), guess)
	}
	return fmt.Errorf("%s", errors.GetMessage(converted))
}
