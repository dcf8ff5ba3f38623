package loader

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlrender/pkg/core"
	"github.com/leapstack-labs/sqlrender/pkg/query"
)

// normalize folds a symbol name so that "on_delete", "on-delete",
// "On Delete" and "onDelete" all match.
func normalize(name string) string {
	r := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}

var (
	keywordsByName = make(map[string]core.Keyword)
	clausesByName  = make(map[string]core.Clause)
	kindsByName    = make(map[string]core.QueryKind)
)

// operatorAliases maps the operator spellings accepted in documents onto
// predicate clauses. Clause symbol names are accepted as well.
var operatorAliases = map[string]core.Clause{
	"=":   core.Equals,
	"==":  core.Equals,
	"eq":  core.Equals,
	"!=":  core.NotEquals,
	"<>":  core.NotEquals,
	"ne":  core.NotEquals,
	">":   core.GreaterThan,
	"gt":  core.GreaterThan,
	">=":  core.GreaterThanOrEqual,
	"gte": core.GreaterThanOrEqual,
	"<":   core.LessThan,
	"lt":  core.LessThan,
	"<=":  core.LessThanOrEqual,
	"lte": core.LessThanOrEqual,
	"~":   core.Regexp,
	"!~":  core.NotRegexp,
}

// joinAliases maps short join type names onto join clauses.
var joinAliases = map[string]core.Clause{
	"inner":    core.JoinInner,
	"join":     core.JoinInner,
	"left":     core.JoinLeft,
	"right":    core.JoinRight,
	"outer":    core.JoinOuter,
	"full":     core.JoinOuter,
	"straight": core.JoinStraight,
	"cross":    core.JoinCross,
}

// predicateOps lists the clauses usable as a condition operator.
var predicateOps = map[core.Clause]bool{
	core.Equals:             true,
	core.NotEquals:          true,
	core.GreaterThan:        true,
	core.GreaterThanOrEqual: true,
	core.LessThan:           true,
	core.LessThanOrEqual:    true,
	core.Like:               true,
	core.NotLike:            true,
	core.In:                 true,
	core.NotIn:              true,
	core.Between:            true,
	core.NotBetween:         true,
	core.IsNull:             true,
	core.IsNotNull:          true,
	core.Regexp:             true,
	core.NotRegexp:          true,
	core.RLike:              true,
}

var compoundOps = map[core.Clause]bool{
	core.Union:     true,
	core.UnionAll:  true,
	core.Intersect: true,
	core.Except:    true,
}

var lockModes = map[string]query.LockMode{
	"":          query.LockNone,
	"none":      query.LockNone,
	"update":    query.LockForUpdate,
	"forupdate": query.LockForUpdate,
	"share":     query.LockForShare,
	"forshare":  query.LockForShare,
}

func init() {
	for _, k := range core.AllKeywords() {
		keywordsByName[normalize(k.String())] = k
	}
	for _, c := range core.AllClauses() {
		clausesByName[normalize(c.String())] = c
	}
	for _, k := range core.AllQueryKinds() {
		kindsByName[normalize(k.String())] = k
	}
}

// UnknownSymbolError reports a document value that names no known symbol.
type UnknownSymbolError struct {
	Category string // keyword, operator, join type, ...
	Name     string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Category, e.Name)
}

func lookupKeyword(name string) (core.Keyword, error) {
	if k, ok := keywordsByName[normalize(name)]; ok {
		return k, nil
	}
	return core.KeywordInvalid, &UnknownSymbolError{Category: "keyword", Name: name}
}

func lookupKind(name string) (core.QueryKind, error) {
	if k, ok := kindsByName[normalize(name)]; ok {
		return k, nil
	}
	return core.KindInvalid, &UnknownSymbolError{Category: "statement kind", Name: name}
}

func lookupOperator(name string) (core.Clause, error) {
	if c, ok := operatorAliases[strings.TrimSpace(strings.ToLower(name))]; ok {
		return c, nil
	}
	if c, ok := clausesByName[normalize(name)]; ok && predicateOps[c] {
		return c, nil
	}
	return core.ClauseInvalid, &UnknownSymbolError{Category: "operator", Name: name}
}

func lookupJoin(name string) (core.Clause, error) {
	n := normalize(name)
	if c, ok := joinAliases[strings.TrimSuffix(n, "join")]; ok {
		return c, nil
	}
	if c, ok := joinAliases[n]; ok {
		return c, nil
	}
	return core.ClauseInvalid, &UnknownSymbolError{Category: "join type", Name: name}
}

func lookupCompound(name string) (core.Clause, error) {
	if c, ok := clausesByName[normalize(name)]; ok && compoundOps[c] {
		return c, nil
	}
	return core.ClauseInvalid, &UnknownSymbolError{Category: "compound", Name: name}
}

func lookupLock(name string) (query.LockMode, error) {
	if m, ok := lockModes[normalize(name)]; ok {
		return m, nil
	}
	return query.LockNone, &UnknownSymbolError{Category: "lock mode", Name: name}
}
