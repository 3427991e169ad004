package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/bonsa9/portfolio/internal/logging"
	"github.com/bonsa9/portfolio/internal/posts"
	"github.com/bonsa9/portfolio/pkg/interfaces"
)

const exportPostsMessageType = "portfolio.posts.export"

// PostIngester produces the current post list.
type PostIngester interface {
	Ingest(ctx context.Context) []posts.Record
}

// ExportPostsCommand writes the ingested posts to a JSON file so a static
// build can serve them without a running API.
type ExportPostsCommand struct {
	OutputPath string `json:"output_path"`
	Pretty     bool   `json:"pretty,omitempty"`
}

// Type implements command.Message.
func (ExportPostsCommand) Type() string { return exportPostsMessageType }

// Validate requires a .json output path.
func (m ExportPostsCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.OutputPath,
			validation.Required,
			validation.By(func(value any) error {
				path, _ := value.(string)
				if !strings.EqualFold(filepath.Ext(strings.TrimSpace(path)), ".json") {
					return validation.NewError("portfolio.posts.export.output_path_invalid", "output_path must end in .json")
				}
				return nil
			}),
		),
	)
}

// NewExportPostsHandler returns a handler that ingests posts from source and
// writes them to the command's output path.
func NewExportPostsHandler(source PostIngester, logger interfaces.Logger, opts ...HandlerOption[ExportPostsCommand]) *Handler[ExportPostsCommand] {
	if logger == nil {
		logger = logging.NoOp()
	}
	defaults := []HandlerOption[ExportPostsCommand]{
		WithLogger[ExportPostsCommand](logger),
		WithOperation[ExportPostsCommand]("posts.export"),
	}

	return NewHandler[ExportPostsCommand](func(ctx context.Context, msg ExportPostsCommand) error {
		if source == nil {
			return errors.New("commands: export posts: no post source configured")
		}
		path := strings.TrimSpace(msg.OutputPath)
		records := source.Ingest(ctx)
		if err := writePostsJSON(path, records, msg.Pretty); err != nil {
			return err
		}
		logger.Info("posts.export.written", "path", path, "records", len(records))
		return nil
	}, append(defaults, opts...)...)
}

func writePostsJSON(path string, records []posts.Record, pretty bool) error {
	if records == nil {
		records = []posts.Record{}
	}
	var (
		payload []byte
		err     error
	)
	if pretty {
		payload, err = json.MarshalIndent(records, "", "  ")
	} else {
		payload, err = json.Marshal(records)
	}
	if err != nil {
		return fmt.Errorf("commands: encode posts: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("commands: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("commands: write %s: %w", path, err)
	}
	return nil
}
