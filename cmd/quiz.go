package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Work with the quiz from the command line",
}

var quizQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the quiz questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		questions, err := svcs.Remote.Questions(cmd.Context())
		if err != nil {
			return err
		}
		for _, q := range questions {
			fmt.Printf("%3d  [%s]  %s\n", q.ID, q.Category, q.Text)
		}
		return nil
	},
}

var quizAnswerCmd = &cobra.Command{
	Use:   "answer <question-id> <value>",
	Short: "Record an answer (1-10)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("question id must be a number: %q", args[0])
		}
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("answer must be a number: %q", args[1])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		if err := svcs.Progress.Record(cmd.Context(), id, value); err != nil {
			return err
		}
		fmt.Printf("Recorded question %d = %d\n", id, value)
		return nil
	},
}

var quizProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show answers saved in the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		answers, err := svcs.Progress.Load(cmd.Context())
		if err != nil {
			return err
		}
		if len(answers) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}
		for id, value := range answers {
			fmt.Printf("%3d = %d\n", id, value)
		}
		return nil
	},
}

var quizSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit saved answers and compute recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		questions, err := svcs.Remote.Questions(ctx)
		if err != nil {
			return err
		}
		answers, err := svcs.Progress.Load(ctx)
		if err != nil {
			return err
		}
		token, err := svcs.Session.GetOrCreate(ctx)
		if err != nil {
			return err
		}

		required := make([]int, 0, len(questions))
		for _, q := range questions {
			required = append(required, q.ID)
		}

		snap, err := svcs.Results.Run(ctx, token, answers, required)
		if err != nil {
			return err
		}

		if username, ok, _ := svcs.Identity.CurrentUser(ctx); ok {
			if _, err := svcs.Ledger(username).Append(ctx, snap); err != nil {
				return err
			}
		}
		if err := svcs.Progress.Clear(ctx); err != nil {
			return err
		}

		printSnapshot(snap)
		return nil
	},
}

var quizClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard saved answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		if err := svcs.Progress.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Saved answers cleared.")
		return nil
	},
}

func init() {
	quizCmd.AddCommand(quizQuestionsCmd)
	quizCmd.AddCommand(quizAnswerCmd)
	quizCmd.AddCommand(quizProgressCmd)
	quizCmd.AddCommand(quizSubmitCmd)
	quizCmd.AddCommand(quizClearCmd)
}
