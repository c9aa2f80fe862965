package convert

// RuleSet is an insertion-ordered collection of rules keyed by id.
//
// Putting a rule whose id is already present replaces it in place, so a rule
// keeps the position of its first appearance but the content of its last.
type RuleSet struct {
	order []string
	rules map[string]Rule
}

func NewRuleSet() *RuleSet {
	return &RuleSet{rules: make(map[string]Rule)}
}

// Put inserts the rule, or overwrites the existing rule with the same id.
func (rs *RuleSet) Put(rule Rule) {
	if _, ok := rs.rules[rule.ID]; !ok {
		rs.order = append(rs.order, rule.ID)
	}
	rs.rules[rule.ID] = rule
}

// Merge puts every rule of other into rs, in the order they appear in other.
func (rs *RuleSet) Merge(other *RuleSet) {
	for _, id := range other.order {
		rs.Put(other.rules[id])
	}
}

func (rs *RuleSet) Get(id string) (Rule, bool) {
	rule, ok := rs.rules[id]

	return rule, ok
}

func (rs *RuleSet) Len() int {
	return len(rs.order)
}

// Rules returns the rules in insertion order.
func (rs *RuleSet) Rules() []Rule {
	rules := make([]Rule, 0, len(rs.order))
	for _, id := range rs.order {
		rules = append(rules, rs.rules[id])
	}

	return rules
}
