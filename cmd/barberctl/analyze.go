package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/application/usecases"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/config"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/entities"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/valueobjects"
	domainservices "github.com/JosueEspinoza19/barber-ia-functions/internal/domain/services"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/infrastructure/external"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/infrastructure/logging"
	infraservices "github.com/JosueEspinoza19/barber-ia-functions/internal/infrastructure/services"
)

type analyzeOptions struct {
	cfgPath   string
	imagePath string
	uid       string
	outPath   string
}

func newAnalyzeCmd() *cobra.Command {
	opts := analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run one photo through the model without the HTTP layer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.cfgPath, "config", "c", os.Getenv("CONFIG_FILE"), "config yaml path")
	fs.StringVarP(&opts.imagePath, "image", "i", "", "face photo (jpeg, png, gif or webp)")
	fs.StringVar(&opts.uid, "uid", "barberctl", "caller id written to the logs")
	fs.StringVarP(&opts.outPath, "out", "o", "", "where to write the edited image (default simulated.<format>)")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}

func runAnalyze(cmd *cobra.Command, opts analyzeOptions) error {
	cfg, err := config.Load(opts.cfgPath)
	if err != nil {
		return err
	}
	if _, err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()); err != nil {
		return err
	}

	params, err := cfg.GenerationParameters()
	if err != nil {
		return err
	}

	clientPool := infraservices.NewClientPoolService(cfg.AIClientConfig())
	defer clientPool.Close()

	gateway, err := external.NewModelGateway(cfg.Gateway.Backend, clientPool, params)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.imagePath)
	if err != nil {
		return err
	}

	useCase := usecases.NewAnalyzeFaceUseCase(domainservices.NewHairstyleDomainService(gateway))
	output, err := useCase.Execute(cmd.Context(), usecases.AnalyzeFaceInput{
		CallerID:    opts.uid,
		ImageBase64: base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		var analysisErr *entities.AnalysisError
		if errors.As(err, &analysisErr) {
			return fmt.Errorf("%s (%s): %w", analysisErr.Message, analysisErr.Status(), err)
		}
		return err
	}

	edited, err := base64.StdEncoding.DecodeString(output.EditedImageBase64)
	if err != nil {
		return fmt.Errorf("decode edited image: %w", err)
	}
	outPath := editedImagePath(opts.outPath, edited)
	if err := os.WriteFile(outPath, edited, 0o644); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.SuggestionText)
	fmt.Fprintf(cmd.OutOrStdout(), "edited image written to %s\n", outPath)
	return nil
}

// editedImagePath keeps an explicit --out as given. Otherwise the extension
// follows the format the model actually returned.
func editedImagePath(out string, edited []byte) string {
	if out != "" {
		return out
	}
	img, err := valueobjects.NewImageData(edited)
	if err != nil {
		return "simulated"
	}
	return "simulated." + string(img.Format())
}
