package core

// Keyword is a closed symbol rendered as a single backend token.
type Keyword int

// Keyword symbols. The zero value is invalid so an unset field never
// resolves to a real keyword.
const (
	KeywordInvalid Keyword = iota

	All
	And
	Or
	Asc
	Desc
	Distinct
	Null
	NotNull
	AutoIncrement
	Temporary
	Unique

	// Referential actions
	Cascade
	Restrict
	SetNull
	SetDefault
	NoAction
	MatchFull
	MatchPartial
	MatchSimple

	// Row locking
	ForUpdateLock
	ForShareLock

	// Statement modifiers
	Concurrently
	ContinueIdentity
	RestartIdentity
	Only
	Drop
	Unlogged
	Global
	Local

	// Table options
	OnCommit
	DeleteRows
	PreserveRows
	Inherits
	Tablespace
	WithOids
	WithoutOids
	Engine
	CharacterSet
	RowFormat
	WithoutRowID
	Strict

	keywordCount
)

var keywordNames = [keywordCount]string{
	KeywordInvalid:   "invalid",
	All:              "all",
	And:              "and",
	Or:               "or",
	Asc:              "asc",
	Desc:             "desc",
	Distinct:         "distinct",
	Null:             "null",
	NotNull:          "notNull",
	AutoIncrement:    "autoIncrement",
	Temporary:        "temporary",
	Unique:           "unique",
	Cascade:          "cascade",
	Restrict:         "restrict",
	SetNull:          "setNull",
	SetDefault:       "setDefault",
	NoAction:         "noAction",
	MatchFull:        "matchFull",
	MatchPartial:     "matchPartial",
	MatchSimple:      "matchSimple",
	ForUpdateLock:    "forUpdateLock",
	ForShareLock:     "forShareLock",
	Concurrently:     "concurrently",
	ContinueIdentity: "continueIdentity",
	RestartIdentity:  "restartIdentity",
	Only:             "only",
	Drop:             "drop",
	Unlogged:         "unlogged",
	Global:           "global",
	Local:            "local",
	OnCommit:         "onCommit",
	DeleteRows:       "deleteRows",
	PreserveRows:     "preserveRows",
	Inherits:         "inherits",
	Tablespace:       "tablespace",
	WithOids:         "withOids",
	WithoutOids:      "withoutOids",
	Engine:           "engine",
	CharacterSet:     "characterSet",
	RowFormat:        "rowFormat",
	WithoutRowID:     "withoutRowId",
	Strict:           "strict",
}

// String returns the symbol name of the keyword.
func (k Keyword) String() string {
	if k < 0 || k >= keywordCount {
		return "unknown"
	}
	return keywordNames[k]
}

// ParseKeyword returns the keyword with the given symbol name.
func ParseKeyword(name string) (Keyword, bool) {
	for k := Keyword(1); k < keywordCount; k++ {
		if keywordNames[k] == name {
			return k, true
		}
	}
	return KeywordInvalid, false
}

// AllKeywords returns every valid keyword symbol in declaration order.
func AllKeywords() []Keyword {
	out := make([]Keyword, 0, keywordCount-1)
	for k := Keyword(1); k < keywordCount; k++ {
		out = append(out, k)
	}
	return out
}

// Clause is a closed symbol rendered through a format string with a fixed
// number of %s arguments.
type Clause int

// Clause symbols.
const (
	ClauseInvalid Clause = iota

	AsAlias    // 2 args: expression, alias
	Collate    // 1 arg: collation
	Comment    // 1 arg: quoted comment
	Constraint // 1 arg: quoted name
	DefaultTo  // 1 arg: literal
	DistinctOn // 1 arg: field list

	Where       // 1 arg: predicate
	Having      // 1 arg: predicate
	GroupBy     // 1 arg: field list
	OrderBy     // 1 arg: order list
	Limit       // 1 arg: limit
	LimitOffset // 2 args: limit, offset
	Returning   // 1 arg: field list

	// Compounds, 1 arg: sub-select
	Union
	UnionAll
	Intersect
	Except

	// Joins, 2 args: table, condition (JoinCross takes only the table)
	JoinInner
	JoinLeft
	JoinRight
	JoinOuter
	JoinStraight
	JoinCross

	// Predicate operators, first arg is the quoted field
	Equals
	NotEquals
	GreaterThan
	GreaterThanOrEqual
	LessThan
	LessThanOrEqual
	Like
	NotLike
	In    // 2 args: field, placeholder list
	NotIn // 2 args: field, placeholder list
	Between
	NotBetween
	IsNull
	IsNotNull
	Regexp
	NotRegexp
	RLike

	// Table keys
	PrimaryKey // 1 arg: column list
	UniqueKey  // 2 args: quoted name, column list
	ForeignKey // 4 args: quoted name, columns, referenced table, referenced columns
	OnDelete   // 1 arg: action
	OnUpdate   // 1 arg: action

	clauseCount
)

var clauseNames = [clauseCount]string{
	ClauseInvalid:      "invalid",
	AsAlias:            "as",
	Collate:            "collate",
	Comment:            "comment",
	Constraint:         "constraint",
	DefaultTo:          "defaultTo",
	DistinctOn:         "distinctOn",
	Where:              "where",
	Having:             "having",
	GroupBy:            "groupBy",
	OrderBy:            "orderBy",
	Limit:              "limit",
	LimitOffset:        "limitOffset",
	Returning:          "returning",
	Union:              "union",
	UnionAll:           "unionAll",
	Intersect:          "intersect",
	Except:             "except",
	JoinInner:          "innerJoin",
	JoinLeft:           "leftJoin",
	JoinRight:          "rightJoin",
	JoinOuter:          "outerJoin",
	JoinStraight:       "straightJoin",
	JoinCross:          "crossJoin",
	Equals:             "equals",
	NotEquals:          "notEquals",
	GreaterThan:        "greaterThan",
	GreaterThanOrEqual: "greaterThanOrEqual",
	LessThan:           "lessThan",
	LessThanOrEqual:    "lessThanOrEqual",
	Like:               "like",
	NotLike:            "notLike",
	In:                 "in",
	NotIn:              "notIn",
	Between:            "between",
	NotBetween:         "notBetween",
	IsNull:             "isNull",
	IsNotNull:          "isNotNull",
	Regexp:             "regexp",
	NotRegexp:          "notRegexp",
	RLike:              "rlike",
	PrimaryKey:         "primaryKey",
	UniqueKey:          "uniqueKey",
	ForeignKey:         "foreignKey",
	OnDelete:           "onDelete",
	OnUpdate:           "onUpdate",
}

// String returns the symbol name of the clause.
func (c Clause) String() string {
	if c < 0 || c >= clauseCount {
		return "unknown"
	}
	return clauseNames[c]
}

// ParseClause returns the clause with the given symbol name.
func ParseClause(name string) (Clause, bool) {
	for c := Clause(1); c < clauseCount; c++ {
		if clauseNames[c] == name {
			return c, true
		}
	}
	return ClauseInvalid, false
}

// AllClauses returns every valid clause symbol in declaration order.
func AllClauses() []Clause {
	out := make([]Clause, 0, clauseCount-1)
	for c := Clause(1); c < clauseCount; c++ {
		out = append(out, c)
	}
	return out
}

// QueryKind identifies the statement a query renders to.
type QueryKind int

// QueryKind constants.
const (
	KindInvalid QueryKind = iota
	Select
	Insert
	Update
	Delete
	Truncate
	CreateTable
	CreateIndex
	DropTable
	DropIndex

	queryKindCount
)

var queryKindNames = [queryKindCount]string{
	KindInvalid: "invalid",
	Select:      "select",
	Insert:      "insert",
	Update:      "update",
	Delete:      "delete",
	Truncate:    "truncate",
	CreateTable: "createTable",
	CreateIndex: "createIndex",
	DropTable:   "dropTable",
	DropIndex:   "dropIndex",
}

func (k QueryKind) String() string {
	if k < 0 || k >= queryKindCount {
		return "unknown"
	}
	return queryKindNames[k]
}

// ParseQueryKind returns the query kind with the given name.
func ParseQueryKind(name string) (QueryKind, bool) {
	for k := QueryKind(1); k < queryKindCount; k++ {
		if queryKindNames[k] == name {
			return k, true
		}
	}
	return KindInvalid, false
}

// AllQueryKinds returns every valid query kind in declaration order.
func AllQueryKinds() []QueryKind {
	out := make([]QueryKind, 0, queryKindCount-1)
	for k := QueryKind(1); k < queryKindCount; k++ {
		out = append(out, k)
	}
	return out
}
