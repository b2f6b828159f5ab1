package main

import (
	"context"
	"fmt"
	"hr_console/internal/app"
	"hr_console/internal/config"
	"hr_console/internal/model"
	"hr_console/internal/platform"
	"hr_console/internal/repository"
	"hr_console/internal/service"
	"hr_console/pkg/database"
	"hr_console/pkg/logger"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:           "hr-console",
		Short:         "Operator console for the HR assessment platform",
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory holding config.yaml")

	load := func() (*config.Config, error) {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return nil, errors.Wrap(err, "load config")
		}
		logger.InitLogger(cfg)
		return cfg, nil
	}

	cmd.AddCommand(
		newServeCmd(load, &configDir),
		newMigrateCmd(load),
		newCreateOperatorCmd(load),
		newImportQuestionsCmd(load),
	)
	return cmd
}

type configLoader func() (*config.Config, error)

func newServeCmd(load configLoader, configDir *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the console API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			defer logger.Log.Sync()
			cfg.ForceMigrate = migrate

			application, err := app.NewApp(cfg)
			if err != nil {
				logger.Log.Error("Failed to start console", zap.Error(err))
				return err
			}
			application.WatchConfig(*configDir)
			return application.Run()
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "migrate the console tables even in release mode")
	return cmd
}

func newMigrateCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the console tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			defer logger.Log.Sync()

			db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
			if err != nil {
				return err
			}
			return database.Migrate(db)
		},
	}
}

func newCreateOperatorCmd(load configLoader) *cobra.Command {
	var name, email, password, role string

	cmd := &cobra.Command{
		Use:   "create-operator",
		Short: "Register a console operator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch model.OperatorRole(role) {
			case model.RoleAdmin, model.RoleViewer:
			default:
				return fmt.Errorf("invalid --role %q: must be admin or viewer", role)
			}
			if len(password) < 8 {
				return errors.New("--password must be at least 8 characters")
			}

			cfg, err := load()
			if err != nil {
				return err
			}
			defer logger.Log.Sync()

			db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
			if err != nil {
				return err
			}
			auth := service.NewAuthService(repository.NewOperatorRepository(db), cfg)
			op, err := auth.CreateOperator(name, email, password, model.OperatorRole(role))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created operator %d <%s> as %s\n", op.ID, op.Email, op.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().StringVar(&role, "role", string(model.RoleAdmin), "admin or viewer")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// newImportQuestionsCmd uploads a CSV or XLSX question template for one
// business, the same way the console upload does.
func newImportQuestionsCmd(load configLoader) *cobra.Command {
	var businessID uint
	var file string

	cmd := &cobra.Command{
		Use:   "import-questions",
		Short: "Upload a question-pair template for a business",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(file)
			if err != nil {
				return errors.Wrap(err, "read template")
			}

			cfg, err := load()
			if err != nil {
				return err
			}
			defer logger.Log.Sync()

			client, err := platform.NewClient(cfg.Platform)
			if err != nil {
				return err
			}
			businesses := service.NewBusinessService(client, nil, cfg.Console.LogoMaxBytes)

			upload := &service.Upload{Filename: filepath.Base(file), Size: int64(len(content)), Content: content}
			details, err := businesses.UploadQuestionTemplate(context.Background(), businessID, upload)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s to %s, %d question pairs\n",
				upload.Filename, details.Business.Name, len(details.QuestionPairs))
			return nil
		},
	}
	cmd.Flags().UintVar(&businessID, "business", 0, "business id")
	cmd.Flags().StringVar(&file, "file", "", "csv or xlsx template")
	_ = cmd.MarkFlagRequired("business")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
