package newick

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/emirpasic/gods/stacks/arraystack"

	errs "github.com/matzehuels/newick/pkg/errors"
	"github.com/matzehuels/newick/pkg/tree"
)

// reserved ends a name.
const reserved = ":;,()["

// Options configures a [Parser].
type Options struct {
	// Strict turns text left after the terminating ';' into an INVALID_FORMAT
	// error instead of a warning.
	Strict bool
	// Logger receives warnings and debug output. Nil disables logging.
	Logger *log.Logger
}

// Parser reads Newick text. A Parser collects the warnings of every call
// made on it; it is not safe for concurrent use.
type Parser struct {
	opts     Options
	warnings []errs.Warning
}

// NewParser creates a parser with the given options.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse reads a single tree with the default options.
func Parse(text string) (*tree.Node, error) {
	return NewParser(Options{}).Parse(text)
}

// ParseForest reads every ';'-separated tree in text with the default options.
func ParseForest(text string) (tree.Forest, error) {
	return NewParser(Options{}).ParseForest(text)
}

// Warnings returns the warnings recorded so far.
func (p *Parser) Warnings() []errs.Warning { return p.warnings }

// Parse reads one tree from text. The tree must be followed, after optional
// whitespace, by the end of input or by ';'.
func (p *Parser) Parse(text string) (*tree.Node, error) {
	s := []rune(text)
	return p.parseTree(s, 0, len(s), 0)
}

// ParseForest splits text on ';', trims every segment, drops blank segments
// and parses each remaining segment as a tree. Error offsets refer to text.
func (p *Parser) ParseForest(text string) (tree.Forest, error) {
	s := []rune(text)
	var forest tree.Forest
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != ';' {
			continue
		}
		lo, hi := start, i
		for lo < hi && unicode.IsSpace(s[lo]) {
			lo++
		}
		for hi > lo && unicode.IsSpace(s[hi-1]) {
			hi--
		}
		start = i + 1
		if lo == hi {
			continue
		}
		root, err := p.parseTree(s, lo, hi, len(forest))
		if err != nil {
			return nil, err
		}
		forest = append(forest, root)
	}
	if len(forest) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "no tree found in input")
	}
	return forest, nil
}

// parseTree parses s[lo:hi] as one tree. Offsets in errors and warnings are
// absolute positions in s.
func (p *Parser) parseTree(s []rune, lo, hi, index int) (*tree.Node, error) {
	in := s[:hi]
	if countSpaces(in, lo) == hi-lo {
		return nil, errs.New(errs.ErrCodeInvalidInput, "empty tree")
	}

	root, count, err := parseSubtree(in, lo)
	if err != nil {
		return nil, err
	}
	pos := lo + count
	pos += countSpaces(in, pos)

	if pos < hi {
		if in[pos] != ';' {
			return nil, errs.At(errs.ErrCodeInvalidFormat, pos, errs.Snippet(in, pos), "expected ';' or end of input")
		}
		pos++
		pos += countSpaces(in, pos)
		if pos != hi {
			w := errs.Warning{Offset: pos, Unread: hi - pos, Text: errs.Snippet(in, pos)}
			if p.opts.Strict {
				return nil, errs.At(errs.ErrCodeInvalidFormat, pos, w.Text, "%d chars after ';'", w.Unread)
			}
			p.warn(w)
		}
	}

	if p.opts.Logger != nil {
		p.opts.Logger.Debug("parsed tree", "index", index, "nodes", root.Count(), "chars", pos-lo)
	}
	return root, nil
}

func (p *Parser) warn(w errs.Warning) {
	p.warnings = append(p.warnings, w)
	if p.opts.Logger != nil {
		p.opts.Logger.Warn(w.String(), "offset", w.Offset)
	}
}

// parseSubtree reads a subtree at offset and returns it with the number of
// characters consumed.
func parseSubtree(s []rune, offset int) (*tree.Node, int, error) {
	pos := offset
	open := arraystack.New() // nodes whose '(' is not closed yet

	for {
		// Start of a subtree: descend through opening parentheses.
		pos += countSpaces(s, pos)
		if pos < len(s) && s[pos] == '(' {
			open.Push(&tree.Node{})
			pos++
			continue
		}

		node := &tree.Node{}
		n, err := parseLabel(s, pos, node)
		if err != nil {
			return nil, 0, err
		}
		pos += n

		// Attach the finished node and close as many groups as the input closes.
		for {
			top, ok := open.Peek()
			if !ok {
				return node, pos - offset, nil
			}
			parent := top.(*tree.Node)
			parent.AddChild(node)

			pos += countSpaces(s, pos)
			if pos >= len(s) {
				return nil, 0, errs.At(errs.ErrCodeSyntax, pos, "", "in descendants, unexpected end of input (expected ',' or ')')")
			}
			c := s[pos]
			if c == ',' {
				pos++
				break
			}
			if c != ')' {
				return nil, 0, errs.At(errs.ErrCodeSyntax, pos, errs.Snippet(s, pos), "in descendants, could not parse %q (expected ',' or ')')", c)
			}
			pos++
			open.Pop()
			node = parent
			n, err := parseLabel(s, pos, node)
			if err != nil {
				return nil, 0, err
			}
			pos += n
		}
	}
}

// parseLabel reads the name, comment and length that follow a subtree's
// children and stores them on node.
func parseLabel(s []rune, offset int, node *tree.Node) (int, error) {
	count := 0

	name, n := parseName(s, offset)
	count += n
	node.Name = name

	comment, found, n, err := parseComment(s, offset+count)
	if err != nil {
		return 0, err
	}
	count += n
	node.Comment = comment

	length, ok, n, err := parseLength(s, offset+count)
	if err != nil {
		return 0, err
	}
	count += n
	if ok {
		node.SetLength(length)
	}

	if !found {
		comment, _, n, err = parseComment(s, offset+count)
		if err != nil {
			return 0, err
		}
		count += n
		node.Comment = comment
	}
	return count, nil
}

// countSpaces returns the number of whitespace characters at offset.
func countSpaces(s []rune, offset int) int {
	count := 0
	for offset+count < len(s) && unicode.IsSpace(s[offset+count]) {
		count++
	}
	return count
}

// parseName reads a run of non-reserved characters. The name is trimmed and
// empty names are returned as "".
func parseName(s []rune, offset int) (string, int) {
	count := 0
	for offset+count < len(s) && !strings.ContainsRune(reserved, s[offset+count]) {
		count++
	}
	return strings.TrimSpace(string(s[offset : offset+count])), count
}

// parseComment reads an optional bracketed comment after whitespace. The
// whitespace is consumed even if no comment follows.
func parseComment(s []rune, offset int) (string, bool, int, error) {
	count := countSpaces(s, offset)
	start := offset + count
	if start >= len(s) || s[start] != '[' {
		return "", false, count, nil
	}
	for i := start + 1; i < len(s); i++ {
		if s[i] == ']' {
			return string(s[start+1 : i]), true, i + 1 - offset, nil
		}
	}
	return "", false, 0, errs.At(errs.ErrCodeSyntax, start, errs.Snippet(s, start), "unterminated comment")
}

// parseLength reads an optional ':' followed by digits with at most one
// decimal point. The whitespace before it is consumed even if no length
// follows.
func parseLength(s []rune, offset int) (float64, bool, int, error) {
	count := countSpaces(s, offset)
	start := offset + count
	if start >= len(s) || s[start] != ':' {
		return 0, false, count, nil
	}
	count++

	var digits strings.Builder
	seenDot := false
	for offset+count < len(s) {
		c := s[offset+count]
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		} else if c == '.' && !seenDot {
			seenDot = true
			digits.WriteRune(c)
		} else {
			break
		}
		count++
	}

	text := digits.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		e := errs.At(errs.ErrCodeInvalidFormat, start, errs.Snippet(s, start), "invalid length %q", text)
		e.Cause = err
		return 0, false, 0, e
	}
	return v, true, count, nil
}
