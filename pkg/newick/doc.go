// Package newick reads and writes trees in the Newick bracketed notation.
//
// # Grammar
//
// The parser accepts the following grammar, left to right over the input:
//
//	forest   := tree (';' tree)* ';'?
//	tree     := subtree
//	subtree  := children? name? comment? length?
//	children := '(' subtree (',' subtree)* ')'
//	name     := run of characters other than ':' ';' ',' '(' ')' '[' , trimmed
//	comment  := '[' characters-other-than-']' ']'
//	length   := ':' digit* ('.' digit*)?
//
// Whitespace is skipped before the children, the name, the comment and the
// length. A name that is empty after trimming is absent. A comment is opaque:
// the text between the brackets is kept verbatim on [tree.Node.Comment]. A
// comment may also follow the length. Lengths take no sign and no exponent;
// text such as "1e5" stops the length after "1" and fails on the remainder.
//
// # Parsing
//
// [Parse] reads a single tree, optionally terminated by ';'. Text left over
// after the terminator is not an error: it is recorded as an
// [errors.Warning] on the [Parser] (and logged when a logger is configured)
// unless [Options.Strict] is set.
//
// [ParseForest] splits its input on ';' and parses every non-blank segment
// as its own tree.
//
// Every grammar rule is a function that consumes a prefix of the input from
// an offset and returns the number of characters consumed. Nested children
// are handled with an explicit stack of open groups, so deeply nested input
// does not grow the call stack.
//
// # Errors
//
// Failures are *[errors.Error] values carrying the offending rune offset and
// a bounded snippet of the remaining input:
//
//   - SYNTAX_ERROR: a descendant list lacks ',' or ')', or a comment is not closed
//   - INVALID_FORMAT: the tree is followed by something other than ';' or the
//     end of input, or a length does not convert to a number
//   - INVALID_INPUT: the input is blank
//
// # Writing
//
// [Format] renders one tree as "(child,child)name[comment]:length" without a
// terminator; [FormatForest] joins trees with ";\n" and appends a final ';'.
// Lengths are written in their shortest decimal form, so parsing the output
// again yields the same names, lengths, comments and child order.
//
// [errors.Warning]: github.com/matzehuels/newick/pkg/errors.Warning
// [errors.Error]: github.com/matzehuels/newick/pkg/errors.Error
package newick
