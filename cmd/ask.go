package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/oasys/internal/attendance"
	"github.com/abhisek/oasys/internal/responder"
)

var askCmd = &cobra.Command{
	Use:   "ask <message...>",
	Short: "Ask O-AI-sys a question and print its reply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")
		if strings.TrimSpace(message) == "" {
			return errors.New("message must not be empty")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		src, err := openSource(cmd.Context(), cfg, true)
		if err != nil {
			return err
		}
		defer src.Repo.Close()

		courses, err := src.Repo.Courses(cmd.Context())
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}

		reply := responder.Select(message, attendance.Overall(courses))

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(reply)
		}
		fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
		return nil
	},
}

func init() {
	askCmd.Flags().Bool("json", false, "Print the reply as JSON with its kind")
}
