package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"timeline-backend/internal/client/present"
	"timeline-backend/internal/domains/entry/model"
)

type addOptions struct {
	photo       string
	description string
	date        string
	link        string
}

func newAddCommand(app *App) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry to the timeline",
		Long: "Add an entry. --photo takes a URL, a data URI or a path to a local image file,\n" +
			"which is embedded as a base64 data URI.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := opts.draft(app)
			if err != nil {
				return err
			}

			ctrl := app.controller()
			// The local branch persists the whole list, so start from the current one.
			if _, err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}

			entry, res, err := ctrl.Add(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, app.renderer.Saved(entry, res.Local()))
			fmt.Fprintln(app.Out, app.renderer.Card(entry))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.photo, "photo", "p", "", "image URL, data URI or local file (required)")
	f.StringVarP(&opts.description, "description", "d", "", "what happened (required)")
	f.StringVar(&opts.date, "date", "", "when it happened, YYYY-MM-DD (default today)")
	f.StringVarP(&opts.link, "link", "l", "", "optional related URL")
	_ = cmd.MarkFlagRequired("photo")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

// draft resolves the photo, defaults the date and validates like the server does.
func (o *addOptions) draft(app *App) (model.Draft, error) {
	photo, err := present.PhotoFromInput(o.photo)
	if err != nil {
		return model.Draft{}, err
	}

	date := strings.TrimSpace(o.date)
	if date == "" {
		date = model.DateOf(app.Now()).String()
	}

	req := model.CreateEntryRequest{
		Photo:       photo,
		Description: o.description,
		Date:        date,
		Link:        &o.link,
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return model.Draft{}, err
	}

	parsed, err := model.ParseDate(req.Date)
	if err != nil {
		return model.Draft{}, err
	}
	return model.Draft{
		Photo:       req.Photo,
		Description: req.Description,
		Date:        parsed,
		Link:        req.Link,
	}, nil
}
