package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
	"github.com/coldtimes/MapFantasai/internal/orchestrators/draft"
	"github.com/coldtimes/MapFantasai/internal/pkg/idgen"
	"github.com/coldtimes/MapFantasai/internal/pkg/taglist"
)

const formHelp = `commands:
  set <field> <value>     name, gender, race, class or background
  stat <ability> <value>  strength, dexterity, constitution, intelligence, wisdom, charisma
  add <list> <value>      inventory, traits or quirks
  rm <list> <index>       remove the tag at index (0 based)
  roll                    roll every ability with 4d6 drop lowest
  options <field>         suggestions for race or class
  preview                 print the current draft
  submit                  finalize the character
  help                    show this text
  quit                    leave without submitting`

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill the character form in the terminal",
	Long:  `Fill the character form one command per line. The JSON preview is printed after every change.`,
	RunE:  runForm,
}

func init() {
	addCommonFlags(formCmd)
}

func runForm(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	session, err := newFormSession(&formSessionConfig{
		ID:        idgen.NewPrefixed("form").Generate(),
		Submitter: deps.submitter,
		Catalog:   deps.catalog,
		Roller:    deps.roller,
		Out:       cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	defer session.Close()

	return session.Run(ctx, os.Stdin)
}

type formSessionConfig struct {
	ID        string
	Submitter v1alpha1.Submitter
	Catalog   v1alpha1.OptionLister
	Roller    v1alpha1.StatRoller
	Out       io.Writer
}

// formSession is one terminal form. The input line is the only scratch
// state; everything else lives in the draft store.
type formSession struct {
	store     *draft.Store
	submitter v1alpha1.Submitter
	catalog   v1alpha1.OptionLister
	roller    v1alpha1.StatRoller
	out       io.Writer
	previewID string
	submitted *character.Finalized
}

func newFormSession(cfg *formSessionConfig) (*formSession, error) {
	store, err := draft.NewStore(&draft.StoreConfig{ID: cfg.ID, EventBus: events.NewBus()})
	if err != nil {
		return nil, err
	}

	s := &formSession{
		store:     store,
		submitter: cfg.Submitter,
		catalog:   cfg.Catalog,
		roller:    cfg.Roller,
		out:       cfg.Out,
	}
	s.previewID = store.OnChange(func(_ context.Context, d character.Draft) error {
		preview, err := draft.Preview(d)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.out, preview)
		return err
	})
	return s, nil
}

func (s *formSession) Close() {
	_ = s.store.Unsubscribe(s.previewID)
}

// Run reads commands until submit, quit or end of input
func (s *formSession) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, formHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		done, err := s.Execute(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %s\n", describe(err))
		}
		if done {
			return nil
		}
	}
}

// Execute runs one command line. done reports that the session is over.
func (s *formSession) Execute(ctx context.Context, line string) (done bool, err error) {
	verb, rest := cutWord(line)
	switch strings.ToLower(verb) {
	case "":
		return false, nil
	case "help":
		fmt.Fprintln(s.out, formHelp)
		return false, nil
	case "quit", "exit":
		return true, nil
	case "preview":
		preview, err := s.store.Preview()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, preview)
		return false, nil
	case "set":
		name, value := cutWord(rest)
		field, err := character.ParseIdentityField(name)
		if err != nil {
			return false, err
		}
		return false, s.apply(ctx, draft.SetIdentityIntent{Field: field, Value: value})
	case "stat":
		name, raw := cutWord(rest)
		ability, err := character.ParseAbility(name)
		if err != nil {
			return false, err
		}
		return false, s.apply(ctx, draft.UpdateStatIntent{Ability: ability, Raw: raw})
	case "add":
		name, raw := cutWord(rest)
		list, err := character.ParseTagList(name)
		if err != nil {
			return false, err
		}
		return false, s.apply(ctx, draft.AddTagIntent{List: list, Raw: raw})
	case "rm", "remove":
		return false, s.remove(ctx, rest)
	case "roll":
		rolls, err := s.roller.RollAll()
		if err != nil {
			return false, err
		}
		for _, r := range rolls {
			fmt.Fprintln(s.out, r.String())
		}
		_, err = s.store.ApplyAll(ctx, draft.RollIntents(rolls)...)
		return false, err
	case "options":
		return false, s.options(ctx, rest)
	case "submit":
		finalized, err := s.submitter.Submit(ctx, s.store.Draft())
		if err != nil {
			return false, err
		}
		s.submitted = finalized
		fmt.Fprintf(s.out, "submitted %s\n", finalized.Name)
		return true, nil
	default:
		return false, errors.InvalidArgumentf("unknown command %q, try help", verb)
	}
}

func (s *formSession) apply(ctx context.Context, intent draft.Intent) error {
	_, err := s.store.Apply(ctx, intent)
	return err
}

func (s *formSession) remove(ctx context.Context, args string) error {
	name, rawIndex := cutWord(args)
	list, err := character.ParseTagList(name)
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(strings.TrimSpace(rawIndex))
	if err != nil {
		return errors.InvalidArgumentf("index %q is not a number", rawIndex)
	}
	tags := s.store.Draft().List(list)
	if !taglist.InRange(tags, index) {
		return errors.OutOfRangef("%s has %d entries, no index %d", list, len(tags), index)
	}
	return s.apply(ctx, draft.RemoveTagIntent{List: list, Index: index})
}

func (s *formSession) options(ctx context.Context, args string) error {
	field, err := character.ParseIdentityField(args)
	if err != nil {
		return err
	}
	options, err := s.catalog.ListOptions(ctx, field)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		fmt.Fprintf(s.out, "no suggestions for %s\n", field)
		return nil
	}
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = o.Name
	}
	fmt.Fprintln(s.out, strings.Join(names, ", "))
	return nil
}

// cutWord splits off the first whitespace separated word. The remainder
// keeps its inner spacing so tags and names can contain spaces.
func cutWord(s string) (word, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i], s[i+size:]
}

// describe adds the validation details and suggestions to an error message
func describe(err error) string {
	msg := err.Error()
	if fields := errors.InvalidFields(err); len(fields) > 0 {
		return "missing " + strings.Join(fields, ", ")
	}
	if guess, ok := errors.GetMeta(err)["suggestion"].(string); ok {
		msg += fmt.Sprintf(" (did you mean %q?)", guess)
	}
	return msg
}
