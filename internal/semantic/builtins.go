package semantic

// builtinDef describes one built-in class: its parent and its own method
// selectors with their arities. Inherited methods are reached through
// ClassManager.ResolveMethod walking the Ancestors chain, not repeated
// here, exactly like Symtable.py's BuiltInSymbols table.
type builtinDef struct {
	name    string
	parent  string
	methods map[string]int
}

// builtinClasses is the fixed set of SOL25's seven built-in classes and
// their methods. Object sits at the root with no parent (ancestry walks
// stop there); every other built-in directly or indirectly extends it.
var builtinClasses = []builtinDef{
	{
		name:   "Object",
		parent: "",
		methods: map[string]int{
			"new":          0,
			"from:":        1,
			"identicalTo:": 1,
			"equalTo:":     1,
			"asString":     0,
			"isNumber":     0,
			"isString":     0,
			"isBlock":      0,
			"isNil":        0,
		},
	},
	{
		name:   "Nil",
		parent: "Object",
		methods: map[string]int{
			"asString": 0,
		},
	},
	{
		name:   "True",
		parent: "Object",
		methods: map[string]int{
			"not":             0,
			"and:":            1,
			"or:":             1,
			"ifTrue:ifFalse:": 2,
		},
	},
	{
		name:   "False",
		parent: "Object",
		methods: map[string]int{
			"not":             0,
			"and:":            1,
			"or:":             1,
			"ifTrue:ifFalse:": 2,
		},
	},
	{
		name:   "Integer",
		parent: "Object",
		methods: map[string]int{
			"equalTo:":      1,
			"greaterThan:":  1,
			"plus:":         1,
			"minus:":        1,
			"multiplyBy:":   1,
			"divBy:":        1,
			"asString":      0,
			"asInteger":     0,
			"timesRepeat:":  1,
		},
	},
	{
		name:   "String",
		parent: "Object",
		methods: map[string]int{
			"equalTo:":               1,
			"asString":               0,
			"asInteger":              0,
			"print":                  0,
			"read":                   0,
			"concatenateWith:":       1,
			"startsWith:endsBefore:": 2,
		},
	},
	{
		name:   "Block",
		parent: "Object",
		methods: map[string]int{
			"value":      0,
			"value:":     1,
			"whileTrue:": 1,
		},
	},
}
