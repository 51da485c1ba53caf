package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	pb "github.com/dmitrijs2005/gophvault/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// clearMarker entered for an optional field on update removes its value.
const clearMarker = "-"

var errUsage = errors.New("usage error")

func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	value, err := GetHidden(a.reader, "Enter secret value", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	notes, err := GetMultiline(a.reader, "Enter notes (optional)", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	category, err := GetSimpleText(a.reader, "Enter category (optional)", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	url, err := GetSimpleText(a.reader, "Enter URL (optional)", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	id, err := a.client.CreateSecret(ctx, &pb.CreateSecretRequest{
		Name:     name,
		Value:    value,
		Notes:    optional(notes),
		Category: optional(category),
		Url:      optional(url),
	})
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Secret stored with id %s\n", id)
	return nil
}

// List prints the caller's secrets. Usage: list [-c category] [search].
func (a *App) List(ctx context.Context, args []string) error {
	var category, search string
	for i := 0; i < len(args); i++ {
		if args[i] == "-c" && i+1 < len(args) {
			category = args[i+1]
			i++
			continue
		}
		search = args[i]
	}

	items, err := a.client.ListSecrets(ctx, category, search)
	if err != nil {
		a.printErr(err)
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No secrets found.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tNOTES\tUPDATED")
	for _, it := range items {
		notes := ""
		if it.GetHasNotes() {
			notes = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.GetId(), it.GetName(), it.GetCategory(), notes,
			formatTime(it.GetUpdatedAt()))
	}
	return tw.Flush()
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.requireID("show", args)
	if err != nil {
		return err
	}

	s, err := a.client.GetSecret(ctx, id)
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Name:     %s\n", s.GetName())
	fmt.Fprintf(a.out, "Value:    %s\n", s.GetValue())
	if s.Category != nil {
		fmt.Fprintf(a.out, "Category: %s\n", *s.Category)
	}
	if s.Url != nil {
		fmt.Fprintf(a.out, "URL:      %s\n", *s.Url)
	}
	if s.Notes != nil {
		fmt.Fprintf(a.out, "Notes:\n%s\n", *s.Notes)
	}
	fmt.Fprintf(a.out, "Updated:  %s\n", formatTime(s.GetUpdatedAt()))
	return nil
}

// Update prompts for every field. An empty answer keeps the current value;
// "-" clears an optional field.
func (a *App) Update(ctx context.Context, args []string) error {
	id, err := a.requireID("update", args)
	if err != nil {
		return err
	}

	req := &pb.UpdateSecretRequest{Id: id}
	hint := fmt.Sprintf(" (Enter keeps, %q clears)", clearMarker)

	name, err := GetSimpleText(a.reader, "New name (Enter keeps)", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	req.Name = optional(name)

	value, err := GetHidden(a.reader, "New secret value (Enter keeps)", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	req.Value = optional(value)

	for _, f := range []struct {
		prompt string
		dst    **string
	}{
		{"New notes" + hint, &req.Notes},
		{"New category" + hint, &req.Category},
		{"New URL" + hint, &req.Url},
	} {
		answer, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			a.printErr(err)
			return err
		}
		*f.dst = patchValue(answer)
	}

	if err := a.client.UpdateSecret(ctx, req); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Secret updated.")
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.requireID("delete", args)
	if err != nil {
		return err
	}

	ok, err := GetConfirmation(a.reader, "Delete secret "+id+"?", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.client.DeleteSecret(ctx, id); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Secret deleted.")
	return nil
}

func (a *App) requireID(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		fmt.Fprintf(a.out, "Usage: %s <id>\n", cmd)
		return "", errUsage
	}
	return args[0], nil
}

// optional returns nil for empty input.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// patchValue maps an update answer: empty keeps, clearMarker clears.
func patchValue(s string) *string {
	switch s {
	case "":
		return nil
	case clearMarker:
		empty := ""
		return &empty
	default:
		return &s
	}
}

// formatTime renders ts in local time, or "-" when unset.
func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().Local().Format("2006-01-02 15:04")
}
