// Package parser turns command lines such as "add n/Alice p/91234567 ..." into
// runner commands. Indices are 1-based here and 0-based in the commands.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/runner"
	"tableflip.dev/weddingbook/pkg/wedding"
)

// ErrParse is returned for malformed command text.
var ErrParse = errors.New("invalid command format")

// Parser implements runner.Parser.
type Parser struct{}

// New returns a Parser.
func New() *Parser {
	return &Parser{}
}

var _ runner.Parser = (*Parser)(nil)

// Parse converts a command line into a command.
func (p *Parser) Parse(line string) (runner.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("%w: empty command, type %q for the list of commands", ErrParse, runner.KeywordHelp)
	}
	word, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch word {
	case runner.KeywordAdd:
		return parseAdd(rest)
	case runner.KeywordEdit:
		return parseEdit(rest)
	case runner.KeywordDelete:
		i, err := parseIndex(rest, word)
		if err != nil {
			return nil, err
		}
		return &runner.Delete{Index: i}, nil
	case runner.KeywordClear:
		return &runner.Clear{}, nil
	case runner.KeywordList:
		return &runner.List{}, nil
	case runner.KeywordFind:
		keywords := strings.Fields(rest)
		if len(keywords) == 0 {
			return nil, usageError(word)
		}
		return &runner.Find{Keywords: keywords}, nil
	case runner.KeywordFilter:
		id, err := parseWeddingID(rest, word)
		if err != nil {
			return nil, err
		}
		return &runner.Filter{Wedding: id}, nil
	case runner.KeywordTag, runner.KeywordUntag:
		return parseTag(word, rest)
	case runner.KeywordAddWedding:
		return parseAddWedding(rest)
	case runner.KeywordEditWedding:
		return parseEditWedding(rest)
	case runner.KeywordDeleteWedding:
		id, err := parseWeddingID(rest, word)
		if err != nil {
			return nil, err
		}
		return &runner.DeleteWedding{ID: id}, nil
	case runner.KeywordListWedding:
		return &runner.ListWedding{}, nil
	case runner.KeywordListWeddingByDate:
		return parseListWeddingByDate(rest)
	case runner.KeywordSortWeddingByID:
		return &runner.SortWeddingByID{}, nil
	case runner.KeywordSortWeddingByDate:
		return &runner.SortWeddingByDate{}, nil
	case runner.KeywordAddTask:
		return parseAddTask(rest)
	case runner.KeywordDeleteTask, runner.KeywordMarkTask, runner.KeywordUnmarkTask:
		return parseTaskIndex(word, rest)
	case runner.KeywordListTask:
		args := tokenize(rest, prefixWedding)
		raw, ok := args.value(prefixWedding)
		if !ok || args.preamble != "" {
			return nil, usageError(word)
		}
		id, err := parseWeddingID(raw, word)
		if err != nil {
			return nil, err
		}
		return &runner.ListTask{Wedding: id}, nil
	case runner.KeywordConfirm:
		return &runner.Confirm{}, nil
	case runner.KeywordHelp:
		return &runner.Help{}, nil
	case runner.KeywordExit:
		return &runner.Exit{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown command %q, type %q for the list of commands", ErrParse, word, runner.KeywordHelp)
	}
}

func parseAdd(rest string) (runner.Command, error) {
	args := tokenize(rest, prefixName, prefixPhone, prefixEmail, prefixRole, prefixAddress, prefixTag)
	if args.preamble != "" {
		return nil, usageError(runner.KeywordAdd)
	}
	for _, p := range []string{prefixName, prefixPhone, prefixEmail, prefixRole, prefixAddress} {
		if !args.has(p) {
			return nil, usageError(runner.KeywordAdd)
		}
	}
	rawName, _ := args.value(prefixName)
	name, err := person.ParseName(rawName)
	if err != nil {
		return nil, err
	}
	rawPhone, _ := args.value(prefixPhone)
	phone, err := person.ParsePhone(rawPhone)
	if err != nil {
		return nil, err
	}
	rawEmail, _ := args.value(prefixEmail)
	email, err := person.ParseEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	rawRole, _ := args.value(prefixRole)
	role, err := person.ParseRole(rawRole)
	if err != nil {
		return nil, err
	}
	rawAddress, _ := args.value(prefixAddress)
	address, err := person.ParseAddress(rawAddress)
	if err != nil {
		return nil, err
	}
	tags, err := parseTags(args.all(prefixTag))
	if err != nil {
		return nil, err
	}
	return &runner.Add{Person: person.New(name, phone, email, role, address, tags...)}, nil
}

func parseEdit(rest string) (runner.Command, error) {
	args := tokenize(rest, prefixName, prefixPhone, prefixEmail, prefixRole, prefixAddress, prefixTag)
	index, err := parseIndex(args.preamble, runner.KeywordEdit)
	if err != nil {
		return nil, err
	}

	var c person.Changes
	if raw, ok := args.value(prefixName); ok {
		v, err := person.ParseName(raw)
		if err != nil {
			return nil, err
		}
		c.Name = &v
	}
	if raw, ok := args.value(prefixPhone); ok {
		v, err := person.ParsePhone(raw)
		if err != nil {
			return nil, err
		}
		c.Phone = &v
	}
	if raw, ok := args.value(prefixEmail); ok {
		v, err := person.ParseEmail(raw)
		if err != nil {
			return nil, err
		}
		c.Email = &v
	}
	if raw, ok := args.value(prefixRole); ok {
		v, err := person.ParseRole(raw)
		if err != nil {
			return nil, err
		}
		c.Role = &v
	}
	if raw, ok := args.value(prefixAddress); ok {
		v, err := person.ParseAddress(raw)
		if err != nil {
			return nil, err
		}
		c.Address = &v
	}
	if args.has(prefixTag) {
		// A lone "t/" clears every tag.
		raws := args.all(prefixTag)
		if len(raws) == 1 && raws[0] == "" {
			raws = nil
		}
		tags, err := parseTags(raws)
		if err != nil {
			return nil, err
		}
		c.Tags = &tags
	}
	if !c.Any() {
		return nil, fmt.Errorf("%w: at least one field to edit must be provided", ErrParse)
	}
	return &runner.Edit{Index: index, Changes: c}, nil
}

func parseTag(word, rest string) (runner.Command, error) {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return nil, usageError(word)
	}
	index, err := parseIndex(fields[0], word)
	if err != nil {
		return nil, err
	}
	id, err := parseWeddingID(strings.TrimPrefix(fields[1], prefixWedding), word)
	if err != nil {
		return nil, err
	}
	if word == runner.KeywordUntag {
		return &runner.Untag{Index: index, Wedding: id}, nil
	}
	return &runner.Tag{Index: index, Wedding: id}, nil
}

func parseAddWedding(rest string) (runner.Command, error) {
	args := tokenize(rest, prefixName, prefixDate, prefixLocation)
	if args.preamble != "" || !args.has(prefixName) || !args.has(prefixDate) || !args.has(prefixLocation) {
		return nil, usageError(runner.KeywordAddWedding)
	}
	rawDate, _ := args.value(prefixDate)
	date, err := wedding.ParseDate(rawDate)
	if err != nil {
		return nil, err
	}
	name, _ := args.value(prefixName)
	location, _ := args.value(prefixLocation)
	if name == "" || location == "" {
		return nil, usageError(runner.KeywordAddWedding)
	}
	return &runner.AddWedding{Name: name, Date: date, Location: location}, nil
}

func parseEditWedding(rest string) (runner.Command, error) {
	args := tokenize(rest, prefixName, prefixDate, prefixLocation)
	id, err := parseWeddingID(args.preamble, runner.KeywordEditWedding)
	if err != nil {
		return nil, err
	}
	c := &runner.EditWedding{ID: id}
	if v, ok := args.value(prefixName); ok {
		c.Name = &v
	}
	if v, ok := args.value(prefixLocation); ok {
		c.Location = &v
	}
	if raw, ok := args.value(prefixDate); ok {
		d, err := wedding.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		c.Date = &d
	}
	if c.Name == nil && c.Date == nil && c.Location == nil {
		return nil, fmt.Errorf("%w: at least one field to edit must be provided", ErrParse)
	}
	return c, nil
}

func parseListWeddingByDate(rest string) (runner.Command, error) {
	args := tokenize(rest, prefixDate)
	raw, ok := args.value(prefixDate)
	if !ok {
		raw = args.preamble
	} else if args.preamble != "" {
		return nil, usageError(runner.KeywordListWeddingByDate)
	}
	if raw == "" {
		return nil, usageError(runner.KeywordListWeddingByDate)
	}
	d, err := wedding.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &runner.ListWeddingByDate{Date: d}, nil
}

func parseAddTask(rest string) (runner.Command, error) {
	args := tokenizeFreeText(rest, prefixDescription, prefixWedding, prefixDescription)
	rawID, okID := args.value(prefixWedding)
	desc, okDesc := args.value(prefixDescription)
	if args.preamble != "" || !okID || !okDesc {
		return nil, usageError(runner.KeywordAddTask)
	}
	id, err := parseWeddingID(rawID, runner.KeywordAddTask)
	if err != nil {
		return nil, err
	}
	return &runner.AddTask{Wedding: id, Description: desc}, nil
}

func parseTaskIndex(word, rest string) (runner.Command, error) {
	args := tokenize(rest, prefixWedding, prefixIndex)
	rawID, okID := args.value(prefixWedding)
	rawIndex, okIndex := args.value(prefixIndex)
	if args.preamble != "" || !okID || !okIndex {
		return nil, usageError(word)
	}
	id, err := parseWeddingID(rawID, word)
	if err != nil {
		return nil, err
	}
	index, err := parseIndex(rawIndex, word)
	if err != nil {
		return nil, err
	}
	switch word {
	case runner.KeywordMarkTask:
		return &runner.MarkTask{Wedding: id, Index: index}, nil
	case runner.KeywordUnmarkTask:
		return &runner.UnmarkTask{Wedding: id, Index: index}, nil
	default:
		return &runner.DeleteTask{Wedding: id, Index: index}, nil
	}
}

// parseIndex converts a 1-based index into a 0-based one.
func parseIndex(raw, word string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: index should be a positive number\n%s", ErrParse, usage(word))
	}
	return n - 1, nil
}

func parseWeddingID(raw, word string) (wedding.ID, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, usageError(word)
	}
	id, err := wedding.ParseID(raw)
	if err != nil {
		return 0, fmt.Errorf("%w\n%s", err, usage(word))
	}
	return id, nil
}

func parseTags(raws []string) ([]person.Tag, error) {
	tags := make([]person.Tag, 0, len(raws))
	for _, raw := range raws {
		t, err := person.ParseTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func usageError(word string) error {
	return fmt.Errorf("%w\n%s", ErrParse, usage(word))
}
