// AngelaMos | 2026
// commands.go

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/angelamos/memorial/internal/action"
	"github.com/angelamos/memorial/internal/apiclient"
	"github.com/angelamos/memorial/internal/contribution"
	"github.com/angelamos/memorial/internal/martyr"
	"github.com/angelamos/memorial/internal/permission"
	"github.com/angelamos/memorial/internal/session"
)

var (
	errUsage         = errors.New("invalid usage")
	errNotLoggedIn   = errors.New("not logged in (run: memorialctl login -email=...)")
	errNotAModerator = errors.New("this command needs a moderator or admin account")
)

type command struct {
	name    string
	summary string
	run     func(a *app, ctx context.Context, args []string) error
}

var commands = []command{
	{"login", "sign in and keep the session", (*app).login},
	{"logout", "forget the stored session", (*app).logout},
	{"whoami", "show the signed-in account", (*app).whoami},
	{"list", "list martyrs", (*app).list},
	{"search", "search martyrs by name, location or description", (*app).search},
	{"show", "show one martyr with testimonials and sources", (*app).show},
	{"contribute", "submit a testimonial, document, photo or correction", (*app).contribute},
	{"pending", "list contributions awaiting review", (*app).pending},
	{"approve", "approve a pending contribution", (*app).approve},
	{"reject", "reject a pending contribution", (*app).reject},
	{"health", "show server health and archive counts", (*app).health},
}

type app struct {
	client  *apiclient.Client
	session *session.Context
	out     io.Writer
}

func newApp(server string, store session.Store, out io.Writer, logger *slog.Logger) *app {
	client := apiclient.New(server, logger)
	return &app{
		client:  client,
		session: session.New(store, client, logger),
		out:     out,
	}
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		return errUsage
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(a, ctx, args[1:])
		}
	}
	return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
}

// authed returns a client carrying the stored token.
func (a *app) authed() (*apiclient.Client, error) {
	if !a.session.IsAuthenticated() {
		return nil, errNotLoggedIn
	}
	return a.client.WithToken(a.session.Token()), nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", os.Getenv("MEMORIAL_PASSWORD"), "password (or MEMORIAL_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	res := a.session.Login(ctx, *email, *password)
	if !res.Success {
		return errors.New(res.Message)
	}

	u := a.session.User()
	fmt.Fprintf(a.out, "%s. Signed in as %s (%s).\n", res.Message, u.Email, permission.DisplayName(u.Role))
	return nil
}

func (a *app) logout(ctx context.Context, args []string) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *app) whoami(ctx context.Context, args []string) error {
	u := a.session.User()
	if u == nil {
		return errNotLoggedIn
	}

	verified := "unverified"
	if u.IsVerified {
		verified = "verified"
	}
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(a.out, "role: %s (%s), %s\n", permission.DisplayName(u.Role), permission.Description(u.Role), verified)
	return nil
}

func (a *app) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	limit := fs.Int("limit", 0, "maximum rows (0 for server default)")
	offset := fs.Int("offset", 0, "rows to skip")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	var limitPtr, offsetPtr *int
	if *limit > 0 {
		limitPtr = limit
	}
	if *offset > 0 {
		offsetPtr = offset
	}

	martyrs, err := a.client.ListMartyrs(ctx, limitPtr, offsetPtr)
	if err != nil {
		return err
	}
	return a.printMartyrs(martyrs)
}

func (a *app) search(ctx context.Context, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return a.list(ctx, nil)
	}

	martyrs, err := a.client.SearchMartyrs(ctx, query)
	if err != nil {
		return err
	}
	return a.printMartyrs(martyrs)
}

func (a *app) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	m, err := a.client.GetMartyr(ctx, args[0])
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("martyr %s not found", args[0])
	}

	fmt.Fprintf(a.out, "%s\n", m.Name)
	fmt.Fprintf(a.out, "  %s, %s\n", m.Date.Format("January 2, 2006"), m.Location)
	printOpt(a.out, "cause", m.Cause)
	if m.Age != nil {
		fmt.Fprintf(a.out, "  age: %d\n", *m.Age)
	}
	printOpt(a.out, "occupation", m.Occupation)
	printOpt(a.out, "family", m.FamilyStatus)
	if m.Description != nil {
		fmt.Fprintf(a.out, "\n  %s\n", *m.Description)
	}

	if len(m.Testimonials) > 0 {
		fmt.Fprintln(a.out, "\nTestimonials:")
		for _, t := range m.Testimonials {
			who := t.Author
			if t.Relationship != nil {
				who += " (" + *t.Relationship + ")"
			}
			fmt.Fprintf(a.out, "  %q\n    - %s\n", t.Content, who)
		}
	}

	if len(m.Sources) > 0 {
		fmt.Fprintln(a.out, "\nSources:")
		for _, s := range m.Sources {
			line := fmt.Sprintf("  [%s] %s, %s", s.Type, s.Name, s.Date.Format("2006-01-02"))
			if s.URL != nil {
				line += " " + *s.URL
			}
			fmt.Fprintln(a.out, line)
		}
	}
	return nil
}

func (a *app) contribute(ctx context.Context, args []string) error {
	fs := newFlagSet("contribute")
	form := contribution.SubmitInput{}
	fs.StringVar(&form.MartyrID, "martyr", "", "martyr id")
	fs.StringVar(&form.ContributionType, "type", "testimonial", "testimonial, document, photo or correction")
	fs.StringVar(&form.Name, "name", "", "your name (anonymous only)")
	fs.StringVar(&form.Email, "email", "", "your email (anonymous only)")
	fs.StringVar(&form.Relationship, "relationship", "", "relationship to the martyr")
	fs.StringVar(&form.URL, "url", "", "link to a document or photo")
	fs.StringVar(&form.Content, "content", "", "the contribution text")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	client := a.client
	if a.session.IsAuthenticated() {
		client = a.client.WithToken(a.session.Token())
	}

	res, err := client.Contribute(ctx, form)
	if err != nil {
		return err
	}
	return a.printResult(res)
}

func (a *app) pending(ctx context.Context, args []string) error {
	fs := newFlagSet("pending")
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	client, err := a.reviewer(permission.ViewAllContributions)
	if err != nil {
		return err
	}

	items, err := client.PendingContributions(ctx, *page, *size)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No pending contributions.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tMARTYR\tFROM\tSUBMITTED")
	for _, c := range items {
		name := "-"
		if c.MartyrName != nil {
			name = *c.MartyrName
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Type, name, c.User.Email, c.CreatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func (a *app) approve(ctx context.Context, args []string) error {
	return a.review(ctx, "approve", permission.ApproveContributions, args)
}

func (a *app) reject(ctx context.Context, args []string) error {
	return a.review(ctx, "reject", permission.RejectContributions, args)
}

func (a *app) review(
	ctx context.Context,
	verb string,
	need permission.Action,
	args []string,
) error {
	fs := newFlagSet(verb)
	notes := fs.String("notes", "", "reviewer notes")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	client, err := a.reviewer(need)
	if err != nil {
		return err
	}

	var notesPtr *string
	if strings.TrimSpace(*notes) != "" {
		notesPtr = notes
	}

	var c *contribution.ContributionResponse
	if verb == "approve" {
		c, err = client.Approve(ctx, fs.Arg(0), notesPtr)
	} else {
		c, err = client.Reject(ctx, fs.Arg(0), notesPtr)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Contribution %s is now %s.\n", c.ID, c.Status)
	return nil
}

// reviewer short-circuits callers the server would refuse anyway.
func (a *app) reviewer(need permission.Action) (*apiclient.Client, error) {
	client, err := a.authed()
	if err != nil {
		return nil, err
	}
	if !a.session.Can(need) {
		return nil, errNotAModerator
	}
	return client, nil
}

func (a *app) health(ctx context.Context, args []string) error {
	doc, err := a.client.Health(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}

	if doc["status"] != "healthy" {
		return errors.New("server reports unhealthy")
	}
	return nil
}

func (a *app) printMartyrs(martyrs []martyr.MartyrResponse) error {
	if len(martyrs) == 0 {
		fmt.Fprintln(a.out, "No martyrs found.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDATE\tLOCATION\tVERIFIED")
	for _, m := range martyrs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n",
			m.ID, m.Name, m.Date.Format("2006-01-02"), m.Location, m.IsVerified)
	}
	return tw.Flush()
}

func (a *app) printResult(res action.Result) error {
	if !res.Success {
		for _, e := range res.Errors {
			fmt.Fprintln(a.out, "  -", e)
		}
		return errors.New(res.Message)
	}
	fmt.Fprintln(a.out, res.Message)
	return nil
}

func printOpt(w io.Writer, label string, v *string) {
	if v != nil && *v != "" {
		fmt.Fprintf(w, "  %s: %s\n", label, *v)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
