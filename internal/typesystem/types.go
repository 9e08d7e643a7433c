package typesystem

import "fmt"

// Type is the interface for every SIMPL type: int, bool, unit, arrow,
// pair, list, reference, and type variable (§3).
type Type interface {
	String() string
	Apply(Subst) Type
	FreeTypeVariables() []TVar
}

// TVar is a type variable. Equality tracks whether this variable was
// introduced at a use-site requiring the equality-type restriction (§4.3);
// substituting into a variable never consults or changes the flag — only
// Eq/Neq read it, on whatever type the variable currently resolves to.
type TVar struct {
	Name     string
	Equality bool
}

func (t TVar) String() string { return t.Name }

func (t TVar) Apply(s Subst) Type {
	return ApplyWithCycleCheck(t, s, map[string]bool{})
}

func (t TVar) FreeTypeVariables() []TVar { return []TVar{t} }

// TCon is a nullary type constant: int, bool, unit.
type TCon struct {
	Name string
}

func (t TCon) String() string             { return t.Name }
func (t TCon) Apply(Subst) Type            { return t }
func (t TCon) FreeTypeVariables() []TVar   { return nil }

var (
	Int  = TCon{Name: "int"}
	Bool = TCon{Name: "bool"}
	Unit = TCon{Name: "unit"}
)

// TArrow is a function type, T1 -> T2.
type TArrow struct {
	Param  Type
	Result Type
}

func (t TArrow) String() string { return fmt.Sprintf("(%s -> %s)", t.Param.String(), t.Result.String()) }

func (t TArrow) Apply(s Subst) Type {
	return TArrow{Param: t.Param.Apply(s), Result: t.Result.Apply(s)}
}

func (t TArrow) FreeTypeVariables() []TVar {
	return uniqueTVars(append(t.Param.FreeTypeVariables(), t.Result.FreeTypeVariables()...))
}

// TPair is a pair type, T1 * T2.
type TPair struct {
	First  Type
	Second Type
}

func (t TPair) String() string { return fmt.Sprintf("(%s * %s)", t.First.String(), t.Second.String()) }

func (t TPair) Apply(s Subst) Type {
	return TPair{First: t.First.Apply(s), Second: t.Second.Apply(s)}
}

func (t TPair) FreeTypeVariables() []TVar {
	return uniqueTVars(append(t.First.FreeTypeVariables(), t.Second.FreeTypeVariables()...))
}

// TList is a cons-list type, T list.
type TList struct {
	Elem Type
}

func (t TList) String() string             { return fmt.Sprintf("%s list", t.Elem.String()) }
func (t TList) Apply(s Subst) Type         { return TList{Elem: t.Elem.Apply(s)} }
func (t TList) FreeTypeVariables() []TVar  { return t.Elem.FreeTypeVariables() }

// TRef is a mutable-reference type, T ref.
type TRef struct {
	Elem Type
}

func (t TRef) String() string            { return fmt.Sprintf("%s ref", t.Elem.String()) }
func (t TRef) Apply(s Subst) Type        { return TRef{Elem: t.Elem.Apply(s)} }
func (t TRef) FreeTypeVariables() []TVar { return t.Elem.FreeTypeVariables() }

// IsEqualityType implements §3's predicate: int/bool/ref are always
// equality types, unit and arrow never are, pair/list are the conjunction
// of their components, and a type variable defers to its own flag.
func IsEqualityType(t Type) bool {
	switch t := t.(type) {
	case TCon:
		return t == Int || t == Bool
	case TRef:
		return true
	case TArrow:
		return false
	case TPair:
		return IsEqualityType(t.First) && IsEqualityType(t.Second)
	case TList:
		return IsEqualityType(t.Elem)
	case TVar:
		return t.Equality
	default:
		return false
	}
}

// Subst is a finite mapping from type-variable name to type, applied
// homomorphically by Apply. Kept as a map (rather than the tagged
// Identity/Replace/Compose algebra) — see DESIGN.md's Open Question note.
type Subst map[string]Type

// Apply applies s to t; s.Apply(t) is shorthand for t.Apply(s).
func (s Subst) Apply(t Type) Type { return t.Apply(s) }

// Compose returns the substitution equivalent to applying s1 after s2:
// Compose(s1,s2).Apply(t) == s1.Apply(s2.Apply(t)). Matches Compose(f,g)
// from §3 with f=s1, g=s2.
func (s1 Subst) Compose(s2 Subst) Subst {
	result := Subst{}
	for k, v := range s2 {
		result[k] = v.Apply(s1)
	}
	for k, v := range s1 {
		if _, exists := result[k]; !exists {
			result[k] = v
		}
	}
	return result
}

// ApplyWithCycleCheck walks a substitution chain defensively: a variable
// that maps back to itself (directly or through a visited cycle) is
// returned unresolved rather than looping forever. SIMPL's own Bind
// rejects cyclic substitutions via the occurs-check before they are ever
// installed, so this is a defense-in-depth guard, not load-bearing logic.
func ApplyWithCycleCheck(t Type, s Subst, visited map[string]bool) Type {
	tv, ok := t.(TVar)
	if !ok {
		return t.Apply(s)
	}
	if visited[tv.Name] {
		return tv
	}
	replacement, ok := s[tv.Name]
	if !ok {
		return tv
	}
	if rv, ok := replacement.(TVar); ok && rv.Name == tv.Name {
		return tv
	}
	next := map[string]bool{tv.Name: true}
	for k := range visited {
		next[k] = true
	}
	return ApplyWithCycleCheck(replacement, s, next)
}

func uniqueTVars(vars []TVar) []TVar {
	seen := map[string]bool{}
	out := make([]TVar, 0, len(vars))
	for _, v := range vars {
		if !seen[v.Name] {
			seen[v.Name] = true
			out = append(out, v)
		}
	}
	return out
}
