package core

import (
	"fmt"
	"regexp"
	"strings"
)

// IsomerGroup is one candidate arrangement of residues on a lipid backbone.
// Order reflects textual order in the identifier, not chemical position.
type IsomerGroup []Residue

// LipidIdentifier is the parsed form of a raw lipid identifier string.
type LipidIdentifier struct {
	// RawText is the original identifier, preserved verbatim.
	RawText string

	// Class is the short lipid class tag (e.g. "PG", "TAG"), empty for
	// free-text compound names without an explicit class prefix.
	Class string

	// Groups holds one IsomerGroup per candidate isomer arrangement.
	// Never empty for a successfully parsed identifier.
	Groups []IsomerGroup

	// TotalComposition is the overall class-level composition token
	// (e.g. the "48:2" in "TAG 48:2 total (...)"), when present.
	TotalComposition *Residue
}

// MalformedIdentifierError reports an input string that matches none of the
// supported identifier shapes.
type MalformedIdentifierError struct {
	Input  string
	Reason string
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed lipid identifier %q: %s", e.Input, e.Reason)
}

var (
	parenPattern      = regexp.MustCompile(`\(.*?\)`)
	decorationPattern = regexp.MustCompile(`\([^():]*\)`)
)

// grammarRule is one entry of the ordered parse dispatch: a predicate over
// the preprocessed identifier and an extractor producing the structured form.
type grammarRule struct {
	name    string
	match   func(s string) bool
	extract func(raw, s string, vocab *Vocabulary) (*LipidIdentifier, error)
}

// identifierRules are tried in priority order; the first match wins.
var identifierRules = []grammarRule{
	{
		name: "class-prefixed residue sequence",
		match: func(s string) bool {
			return !strings.Contains(s, "(") && residuePattern.MatchString(s)
		},
		extract: extractPlainForm,
	},
	{
		name: "parenthesized isomer groups",
		match: func(s string) bool {
			return strings.Contains(s, "(") && residuePattern.MatchString(s)
		},
		extract: extractParenForm,
	},
	{
		name:    "free-text compound name",
		match:   func(s string) bool { return !residuePattern.MatchString(s) },
		extract: extractFreeText,
	},
}

// Parse turns a raw lipid identifier into its structured form. Free-text
// compound names are resolved against vocab; a nil vocab falls back to the
// built-in default vocabulary.
func Parse(raw string, vocab *Vocabulary) (*LipidIdentifier, error) {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, &MalformedIdentifierError{Input: raw, Reason: "empty identifier"}
	}

	s = preprocess(s)

	for _, rule := range identifierRules {
		if rule.match(s) {
			return rule.extract(raw, s, vocab)
		}
	}

	return nil, &MalformedIdentifierError{Input: raw, Reason: "no grammar rule matched"}
}

// preprocess strips decorations that would confuse residue grouping:
// hydroxylation marks like "(OH)" and double-bond position annotations like
// "(9Z)" or "(9Z,12Z)". A parenthesized chunk is a decoration exactly when
// it carries no residue token. Names with the "1," glyceride prefix keep
// their commas.
func preprocess(s string) string {
	if strings.Contains(s, ",") && !strings.HasPrefix(s, "1,") {
		s = strings.ReplaceAll(s, ",", "")
	}
	return decorationPattern.ReplaceAllString(s, "")
}

// classTag returns the leading alphabetic run before the first digit or
// open parenthesis, trimmed of surrounding whitespace.
func classTag(s string) string {
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '(' {
			break
		}
		end++
	}
	tag := strings.TrimSpace(s[:end])
	tag = strings.TrimRight(tag, "-_/")
	return strings.TrimSpace(tag)
}

// parenClassTag returns the class of a parenthesized identifier. Digit-free
// rules would truncate RefMet classes like "Gb3" or "Hex2Cer", so when the
// prefix before the first parenthesis carries no residue token the whole
// prefix is the class; otherwise (multi-isomer forms with a total token in
// the prefix) the digit-stop rule applies.
func parenClassTag(s string) string {
	i := strings.Index(s, "(")
	if i < 0 {
		return classTag(s)
	}
	prefix := s[:i]
	if len(ExtractResidues(prefix)) > 0 {
		return classTag(s)
	}
	tag := strings.TrimSpace(prefix)
	tag = strings.TrimRight(tag, "-_/")
	return strings.TrimSpace(tag)
}

// extractPlainForm handles class-prefixed, slash-delimited identifiers
// without parentheses, e.g. "PG 18:1/20:1" or "CE 12:0".
func extractPlainForm(raw, s string, _ *Vocabulary) (*LipidIdentifier, error) {
	residues := ExtractResidues(s)
	if len(residues) == 0 {
		return nil, &MalformedIdentifierError{Input: raw, Reason: "no residue tokens found"}
	}

	return &LipidIdentifier{
		RawText: raw,
		Class:   classTag(s),
		Groups:  []IsomerGroup{IsomerGroup(residues)},
	}, nil
}

// extractParenForm handles identifiers carrying parenthesized residue
// groups: the bracketed single-class form "FA(18:3)", multi-residue RefMet
// forms like "TG(18:4_20:4_27:0)", and multi-isomer identifiers where each
// parenthesized entity is one candidate arrangement, e.g.
// "TAG 48:2 total (14:0/16:0/18:2)(14:0/16:1/18:1)(16:0/16:1/16:1)" or
// "PS(P-16:1/17:0)/PS(O-16:2/17:0)".
func extractParenForm(raw, s string, _ *Vocabulary) (*LipidIdentifier, error) {
	id := &LipidIdentifier{
		RawText: raw,
		Class:   parenClassTag(s),
	}

	for _, entity := range parenPattern.FindAllString(s, -1) {
		residues := ExtractResidues(entity)
		if len(residues) == 0 {
			continue
		}
		id.Groups = append(id.Groups, IsomerGroup(residues))
	}

	// A total composition token sits outside the parentheses, before the
	// first group (the "48:2" in "TAG 48:2 total (...)").
	if prefixEnd := strings.Index(s, "("); prefixEnd > 0 && len(id.Groups) > 0 {
		if outside := ExtractResidues(s[:prefixEnd]); len(outside) > 0 {
			total := outside[0]
			id.TotalComposition = &total
		}
	}

	if len(id.Groups) == 0 {
		// Tokens exist but none inside parentheses; treat the whole
		// identifier as a single arrangement.
		residues := ExtractResidues(s)
		if len(residues) == 0 {
			return nil, &MalformedIdentifierError{Input: raw, Reason: "no residue tokens found"}
		}
		id.Groups = []IsomerGroup{IsomerGroup(residues)}
	}

	return id, nil
}

// extractFreeText resolves an identifier without residue tokens as a named
// compound against the reference vocabulary. Composite compounds resolve to
// a single multi-residue group and are never treated as ambiguous.
func extractFreeText(raw, s string, vocab *Vocabulary) (*LipidIdentifier, error) {
	residues, err := vocab.Resolve(s)
	if err != nil {
		return nil, err
	}

	return &LipidIdentifier{
		RawText: raw,
		Groups:  []IsomerGroup{IsomerGroup(residues)},
	}, nil
}

// AmbiguityDegree returns the number of candidate isomer arrangements the
// identifier expresses; 1 means unambiguous.
func (id *LipidIdentifier) AmbiguityDegree() int {
	return len(id.Groups)
}

// Ambiguous reports whether the identifier expresses more than one
// candidate isomer arrangement.
func (id *LipidIdentifier) Ambiguous() bool {
	return len(id.Groups) > 1
}

// Residues flattens every isomer group into a single residue list, in group
// order then within-group order, together with the ambiguity degree. With
// dropAmbiguous set, identifiers with more than one candidate arrangement
// are rejected outright and (nil, 0) is returned.
func (id *LipidIdentifier) Residues(dropAmbiguous bool) ([]Residue, int) {
	degree := id.AmbiguityDegree()
	if dropAmbiguous && degree > 1 {
		return nil, 0
	}

	var flattened []Residue
	for _, group := range id.Groups {
		flattened = append(flattened, group...)
	}
	return flattened, degree
}

// ResidueTokens is Residues rendered to canonical token strings.
func (id *LipidIdentifier) ResidueTokens(dropAmbiguous bool) ([]string, int) {
	residues, degree := id.Residues(dropAmbiguous)
	if residues == nil {
		return nil, degree
	}
	tokens := make([]string, len(residues))
	for i, r := range residues {
		tokens[i] = r.String()
	}
	return tokens, degree
}
