package formcheck

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/hangulform/internal/formapi"
	"github.com/dmitrymomot/hangulform/pkg/config"
	"github.com/dmitrymomot/hangulform/pkg/hangul"
	"github.com/dmitrymomot/hangulform/pkg/i18n"
	"github.com/dmitrymomot/hangulform/pkg/logger"
	"github.com/dmitrymomot/hangulform/translations"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// IO bundles the streams a command reads and writes.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type options struct {
	lang      string
	output    string
	mask      bool
	textLimit int
	nfc       bool
	verbose   bool
	messages  string
}

type app struct {
	io   IO
	opts *options
	form *hangul.Form
	loc  *formapi.Localizer
	log  *slog.Logger
}

// NewCommand builds the root command. Flag defaults come from cfg.
func NewCommand(stdio IO, cfg config.App) *cobra.Command {
	opts := &options{
		lang:      cfg.DefaultLanguage,
		output:    outputText,
		textLimit: cfg.Form.TextLimit,
		nfc:       cfg.Form.NFC,
		messages:  cfg.I18NOverridesDir,
	}
	a := &app{io: stdio, opts: opts}

	root := &cobra.Command{
		Use:           "formcheck",
		Short:         "Validate Korean IEP form records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
	}
	root.SetIn(stdio.In)
	root.SetOut(stdio.Out)
	root.SetErr(stdio.Err)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.lang, "lang", opts.lang, "message language (ko, en)")
	flags.StringVarP(&opts.output, "output", "o", opts.output, "output format (text, json)")
	flags.BoolVar(&opts.mask, "mask", false, "mask names, phone numbers and e-mail addresses in output")
	flags.IntVar(&opts.textLimit, "text-limit", opts.textLimit, "character limit for long text fields")
	flags.BoolVar(&opts.nfc, "nfc", opts.nfc, "compose decomposed Hangul before validation")
	flags.StringVar(&opts.messages, "messages", opts.messages, "directory of YAML or JSON message overrides")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every record to stderr")

	root.AddCommand(a.validateCmd(), a.fieldCmd(), a.fieldsCmd())
	return root
}

func (a *app) init(ctx context.Context) error {
	if a.opts.output != outputText && a.opts.output != outputJSON {
		return ErrUnsupportedOutput
	}

	level := slog.LevelWarn
	if a.opts.verbose {
		level = slog.LevelDebug
	}
	a.log = logger.New(
		logger.WithOutput(a.io.Err),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(level),
		logger.WithAttr(logger.Component("formcheck")),
	)

	tr, err := translations.Load(ctx, a.opts.messages, i18n.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.opts.lang = i18n.NewMatcher(tr.SupportedLanguages()...).Match(a.opts.lang)
	if a.opts.lang == "" {
		a.opts.lang = tr.DefaultLanguage()
	}
	a.loc = formapi.NewLocalizer(tr)

	formOpts := []hangul.FormOption{hangul.WithTextLimit(a.opts.textLimit)}
	if a.opts.nfc {
		formOpts = append(formOpts, hangul.WithNFC())
	}
	a.form = hangul.NewForm(formOpts...)
	return nil
}
