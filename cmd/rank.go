package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentbridge/match-ranker/internal/ai"
	"github.com/talentbridge/match-ranker/internal/ai/gemini"
	"github.com/talentbridge/match-ranker/internal/logger"
	"github.com/talentbridge/match-ranker/internal/matching"
	"github.com/talentbridge/match-ranker/internal/secrets"
	"github.com/talentbridge/match-ranker/internal/source"
)

const (
	PromptRecommendations = "Show recommendations"
	PromptReportByCompany = "Report by company"
	PromptAdvice          = "Generate application advice"
	PromptDumpToFile      = "Dump results to file"
	PromptExit            = "Exit"
	PromptBack            = "back"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Next?",
	Items: []string{PromptRecommendations, PromptReportByCompany, PromptAdvice, PromptDumpToFile, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank job postings against a candidate profile",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringP("profile", "p", "", "path to the candidate profile JSON document")
	rankCmd.Flags().String("jobs", "", "path to the job postings JSON document")
	rankCmd.Flags().IntP("limit", "n", matching.DefaultLimit, "maximum number of matches to return")
	rankCmd.Flags().BoolP("auto", "y", false, "print results and exit without the interactive prompt")
	rankCmd.Flags().StringP("out", "o", "", "write ranked results to this file (with --auto)")

	viper.BindPFlag("profile", rankCmd.Flags().Lookup("profile"))
	viper.BindPFlag("jobs", rankCmd.Flags().Lookup("jobs"))
	viper.BindPFlag("limit", rankCmd.Flags().Lookup("limit"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the match-ranker", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Profile == "" {
		logger.Fatal("a candidate profile is required",
			zap.String("hint", "pass --profile or set the 'profile' key in the configuration file"),
		)
	}
	if config.Jobs == "" {
		logger.Fatal("a job postings document is required",
			zap.String("hint", "pass --jobs or set the 'jobs' key in the configuration file"),
		)
	}

	profile, err := source.LoadProfile(config.Profile)
	if err != nil {
		logger.Fatal("loading the candidate profile", zap.Error(err))
	}

	jobs, err := source.LoadJobs(config.Jobs)
	if err != nil {
		logger.Fatal("loading job postings", zap.Error(err))
	}

	logger.Info("loaded inputs",
		zap.String("candidate", profile.Name),
		zap.Int("jobs", len(jobs)),
	)

	if len(jobs) == 0 {
		logger.Info("exiting", zap.String("reason", "no job postings supplied"))
		return
	}

	limit := config.Limit
	if limit == 0 {
		limit = matching.DefaultLimit
	}

	engine := matching.New(config.Matching, logger)

	results, err := engine.Rank(profile, jobs, limit)
	if err != nil {
		logger.Fatal("ranking failed", zap.Error(err))
	}

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no jobs could be scored"))
		return
	}

	printSummary(results, jobs)

	if cmd.Flag("auto").Value.String() == "true" {
		out := cmd.Flag("out").Value.String()
		if out == "" {
			filename, err := results.DumpToTmpFile()
			if err != nil {
				logger.Fatal("dumping results", zap.Error(err))
			}
			logger.Info("dumped results to file", zap.String("filename", filename))
			return
		}
		if err := results.ToFile(out); err != nil {
			logger.Fatal("writing results", zap.Error(err))
		}
		logger.Info("wrote results to file", zap.String("filename", out))
		return
	}

	advisor := prepareAdvisor(ctx, config.AI, logger)

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, logger, results, jobs, profile, advisor); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, logger *zap.Logger, results *matching.MatchResults, jobs []*matching.JobPosting, profile *matching.UserProfile, advisor ai.Advisor) error {
	switch action {
	case PromptRecommendations:
		printRecommendations(results, jobs)
		return nil
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(reportByCompany(results, jobs), "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", results.Len()))
		return nil
	case PromptAdvice:
		if advisor == nil {
			logger.Warn("ai advisor is not configured",
				zap.String("hint", "enable it under the 'ai' section of the configuration file"),
			)
			return nil
		}
		return adviseOnMatch(ctx, logger, results, jobs, profile, advisor)
	case PromptDumpToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printSummary(results *matching.MatchResults, jobs []*matching.JobPosting) {
	for i, match := range results.Items {
		title, company := jobDisplay(jobs, match.JobID)
		fmt.Printf("%2d. [%3d%%] %s / %s (confidence %d%%)\n    %s\n",
			i+1,
			matching.Percent(match.TotalScore),
			title,
			company,
			matching.Percent(match.Confidence),
			match.Explanation,
		)
	}
}

func printRecommendations(results *matching.MatchResults, jobs []*matching.JobPosting) {
	for _, match := range results.Items {
		title, company := jobDisplay(jobs, match.JobID)
		fmt.Printf("%s / %s\n", title, company)
		if len(match.Recommendations) == 0 {
			fmt.Println("  (no recommendations)")
			continue
		}
		for _, rec := range match.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}

// reportByCompany groups ranked matches by the posting company.
func reportByCompany(results *matching.MatchResults, jobs []*matching.JobPosting) map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, match := range results.Items {
		job := source.FindJob(jobs, match.JobID)
		if job == nil {
			continue
		}
		report[job.Company] = append(report[job.Company], map[string]string{
			"title":       job.Title,
			"location":    job.Location,
			"salary":      job.SalaryRange,
			"score":       fmt.Sprintf("%d%%", matching.Percent(match.TotalScore)),
			"explanation": match.Explanation,
		})
	}
	return report
}

func adviseOnMatch(ctx context.Context, logger *zap.Logger, results *matching.MatchResults, jobs []*matching.JobPosting, profile *matching.UserProfile, advisor ai.Advisor) error {
	for {
		items := make([]string, 0, results.Len()+1)
		for _, match := range results.Items {
			title, company := jobDisplay(jobs, match.JobID)
			items = append(items, fmt.Sprintf("%s %s / %s / %d%%",
				match.JobID, title, company, matching.Percent(match.TotalScore),
			))
		}

		matchPrompt := promptui.Select{
			Label: "Choose a match and press ENTER",
			Items: append(items, PromptBack),
		}

		_, selected, err := matchPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		jobID := strings.Split(selected, " ")[0]
		match := results.FindByJobID(jobID)
		job := source.FindJob(jobs, jobID)
		if match == nil || job == nil {
			return fmt.Errorf("there is no such match %s", jobID)
		}

		advice, err := advisor.Advise(ctx, profile, job, match)
		if err != nil {
			logger.Warn("advice generation failed",
				zap.String("job_id", jobID),
				zap.Error(err),
			)
			continue
		}

		fmt.Printf("\nMessage:\n  %s\n", advice.Message)
		if len(advice.TalkingPoints) > 0 {
			fmt.Println("Talking points:")
			for _, point := range advice.TalkingPoints {
				fmt.Printf("  - %s\n", point)
			}
		}
		fmt.Println()
	}
}

func jobDisplay(jobs []*matching.JobPosting, id string) (title, company string) {
	job := source.FindJob(jobs, id)
	if job == nil {
		return id, "unknown"
	}
	return job.Title, job.Company
}

func prepareAdvisor(ctx context.Context, cfg *AIConfig, logger *zap.Logger) ai.Advisor {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	advisor, err := newAIAdvisor(ctx, cfg, logger)
	if err != nil {
		logger.Warn("skipping ai advisor", zap.Error(err))
		return nil
	}
	return advisor
}

func newAIAdvisor(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Advisor, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when the ai advisor is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	advisorLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewAdvisor(generator, advisorLogger, cfg.Gemini.MaxLogLength), nil
}
