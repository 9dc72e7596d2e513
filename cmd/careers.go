package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var careersSearch string

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "Browse the careers catalog",
}

var careersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all careers, optionally filtered by a search term",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		careers, err := svcs.Remote.Careers(cmd.Context())
		if err != nil {
			return err
		}

		bookmarked := make(map[string]bool)
		if names, err := svcs.Bookmarks.List(cmd.Context()); err == nil {
			for _, name := range names {
				bookmarked[name] = true
			}
		}

		query := strings.ToLower(strings.TrimSpace(careersSearch))
		shown := 0
		for _, career := range careers {
			if query != "" &&
				!strings.Contains(strings.ToLower(career.Name), query) &&
				!strings.Contains(strings.ToLower(career.Description), query) {
				continue
			}
			shown++
			star := " "
			if bookmarked[career.Name] {
				star = "★"
			}
			fmt.Printf("%s %3d  %s", star, career.ID, career.Name)
			if career.AverageSalaryRange != "" {
				fmt.Printf("  (%s)", career.AverageSalaryRange)
			}
			fmt.Println()
		}
		if shown == 0 {
			fmt.Println("No careers match.")
		}
		return nil
	},
}

var careersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one career's full profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("career id must be a number, got %q", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		detail, err := svcs.Remote.CareerDetail(cmd.Context(), id)
		if err != nil {
			return err
		}
		if detail == nil {
			fmt.Printf("No career with id %d.\n", id)
			return nil
		}

		fmt.Println(detail.Name)
		fmt.Println(strings.Repeat("=", len(detail.Name)))
		fmt.Println(detail.Description)
		if detail.AverageSalaryRange != "" {
			fmt.Println("Salary:    ", detail.AverageSalaryRange)
		}
		if detail.JobGrowth != "" {
			fmt.Println("Job growth:", detail.JobGrowth)
		}
		if detail.RequiredEducation != "" {
			fmt.Println("Education: ", detail.RequiredEducation)
		}
		if len(detail.RequiredSkills) > 0 {
			fmt.Println("Skills:    ", strings.Join(detail.RequiredSkills, ", "))
		}
		if len(detail.TypicalCompanies) > 0 {
			fmt.Println("Companies: ", strings.Join(detail.TypicalCompanies, ", "))
		}
		if len(detail.RelatedCareers) > 0 {
			fmt.Println("Related:   ", strings.Join(detail.RelatedCareers, ", "))
		}
		if len(detail.Courses) > 0 {
			fmt.Println("\nCourses:")
			for _, course := range detail.Courses {
				fmt.Printf("  • %s", course.Name)
				if course.Provider != "" {
					fmt.Printf(" - %s", course.Provider)
				}
				if course.Difficulty != "" {
					fmt.Printf(" [%s]", course.Difficulty)
				}
				fmt.Println()
			}
		}
		if len(detail.Universities) > 0 {
			fmt.Println("\nUniversities:")
			for _, uni := range detail.Universities {
				fmt.Printf("  • %s", uni.Name)
				if uni.Program != "" {
					fmt.Printf(" - %s", uni.Program)
				}
				if uni.Location != "" {
					fmt.Printf(" (%s)", uni.Location)
				}
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	careersListCmd.Flags().StringVar(&careersSearch, "search", "", "Filter by name or description")
	careersCmd.AddCommand(careersListCmd)
	careersCmd.AddCommand(careersShowCmd)
}
