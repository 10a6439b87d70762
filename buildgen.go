// Package buildgen provides directives for type-safe builder code generation.
//
// Buildgen eliminates tons of manual boilerplate code in builder APIs.
// Declare a builder with a target type and its configuration once, and the
// generator produces the builder implementation. Type-safe settings catch
// configuration errors at compile time, while invalid members are diagnosed
// at generation time, enabling fast and confident refactoring.
//
// To start with Buildgen, add a build constraint to files containing Buildgen
// directives:
//
//	//go:build buildgen
//
// Builders can be declared with Buildgen directives. Builders filling a
// struct type ([Struct]) and builders collecting the arguments of a function
// call ([Func]) are supported. Buildgen derives a setter method for every
// member and classifies each member as required or optional by its type. It
// also provides configurable naming rules and per-member defaults for
// flexible adaptation to various use cases:
//
//	// source:
//	var NewPost = buildgen.Struct[Post](nil)
//
//	// generated: (simplified)
//	func NewPost() *PostBuilder { return &PostBuilder{} }
//
//	func (b *PostBuilder) Title(title string) *PostBuilder {
//		b.title = title
//		b.titleSet = true
//		return b
//	}
//
//	func (b *PostBuilder) Build() (Post, error) { ... }
//
// After declaring builders, run the buildgen command. It will generate
// buildgen_gen.go for your package:
//
//	go run github.com/sublee/buildgen/cmd/buildgen
//
// # Configurations
//
// Buildgen derives setter names mechanically, so name clashes surface as
// diagnostics rather than silently shadowing each other. For example, if Post
// has both a Title and a title field, they derive the same setter:
//
//	post.go:12:15: setter Title for member title is already taken by member Title; rename it with buildgen.Rename
//
// Renaming options can be applied to resolve those clashes. In this case, we
// can solve with just [Rename]. It gives the unexported field its own setter:
//
//	// source:
//	var NewPost = buildgen.Struct[Post](nil,
//		buildgen.Rename(Post{}.title, "RawTitle"),
//	)
//
// There are more naming options. [SetterPrefix] prefixes every derived
// setter, [RenameTrimCommonWordPrefix] and [RenameTrimCommonWordSuffix] trim
// shared words from member names, and [Name] and [Finish] rename the builder
// type and the finisher method. See [Option] for your use case.
//
// # Modules
//
// Builders across a package often share conventions such as a setter prefix
// or a finisher name. [Module] holds shared default configurations so that
// they do not need to be repeated on every directive:
//
//	// source:
//	var (
//		mod     = buildgen.Module(buildgen.SetterPrefix("With"))
//		NewPost = buildgen.Struct[Post](mod)
//		NewUser = buildgen.Struct[User](mod)
//	)
//
//	// generated: (simplified)
//	func (b *PostBuilder) WithTitle(title string) *PostBuilder { ... }
//	func (b *UserBuilder) WithName(name string) *UserBuilder { ... }
//
// Options passed to a directive override the module's defaults. A module
// value never leaves its package: it cannot be exported, passed around, or
// reassigned to another variable.
//
// # Required members
//
// Buildgen classifies every member as required or optional. Members of a
// pointer type and variadic parameters are optional; every other member is
// required. When a builder has required members, its finisher returns an
// error reporting the ones that were never set:
//
//	// source:
//	var NewPost = buildgen.Struct[Post](nil)
//
//	// generated: (simplified)
//	func (b *PostBuilder) Build() (Post, error) {
//		var missing []string
//		if !b.titleSet {
//			missing = append(missing, "Title")
//		}
//		if missing != nil {
//			var zero Post
//			return zero, buildgenerrors.Incomplete("Post", missing...)
//		}
//		...
//	}
//
// The returned error unwraps to buildgenerrors.ErrIncomplete for errors.Is
// checks. When every member is optional, the finisher returns the bare
// target without an error. [Optional], [Required], and [Default] override
// the classification per member.
//
// Finishing consumes the builder. Finishing the same builder twice panics,
// so a half-filled builder cannot leak stale values into a second target.
package buildgen

// module holds shared default configurations for the builders declared under
// it. This is unexported so there is no way to create a module other than
// [Module].
type module *struct{}

type (
	canUseFor interface{ canUseFor() }
	yes       interface{ canUseFor }
	no        interface{ canUseFor }

	// option for [Module]
	moduleOption interface{ moduleOption() yes }

	// option for [Struct]
	structOption interface{ structOption() yes }

	// option for [Func]
	funcOption interface{ funcOption() yes }
)

// Module holds default configurations shared by the builders declared under
// it. Options passed to Module apply to every builder in the module, and
// options passed to a directive override them.
//
// Pass a module as the module argument of a builder directive, then the
// builder belongs to the module:
//
//	var (
//		mod     = buildgen.Module(buildgen.Finish("Done"))
//		NewPost = buildgen.Struct[Post](mod)                        // finishes with Done
//		NewUser = buildgen.Struct[User](mod, buildgen.Finish("Go")) // overridden
//	)
//
// Builders that do not share configurations may pass nil instead of a
// module.
func Module(opts ...moduleOption) module {
	panic("buildgen: not generated")
}

// Struct directive generates a builder for a named struct type:
//
//	// source:
//	var NewPost = buildgen.Struct[Post](nil)
//
// The target type is declared as the type parameter. The variable that holds
// the directive is rewritten to the start function when Buildgen generates
// code, and the builder type is declared next to it:
//
//	// generated: (simplified)
//	func NewPost() *PostBuilder { return &PostBuilder{} }
//
//	func (b *PostBuilder) Title(title string) *PostBuilder { ... }
//	func (b *PostBuilder) Tags(tags []string) *PostBuilder { ... }
//	func (b *PostBuilder) Build() (Post, error) { ... }
//
// Every settable field of the target becomes a member: all named fields for
// a target in the same package, exported fields only for a target in another
// package. Members are classified as required or optional by their type, and
// the Build finisher reports the required ones that were never set. Use
// [Optional], [Required], and [Default] to override the classification.
//
// The target must be a named struct type. Pointer types are rejected;
// declare the builder for the element type instead.
func Struct[T any](mod module, opts ...structOption) func() T {
	panic("buildgen: not generated")
}

// Func directive generates a builder for the arguments of a function. The
// builder collects one member per parameter, and the finisher calls the
// function:
//
//	// source:
//	func publish(title, body string, tags ...string) (*Post, error)
//
//	var NewPublish = buildgen.Func(publish, nil)
//
//	// generated: (simplified)
//	func NewPublish() *publishBuilder { return &publishBuilder{} }
//
//	func (b *publishBuilder) Title(title string) *publishBuilder { ... }
//	func (b *publishBuilder) Body(body string) *publishBuilder { ... }
//	func (b *publishBuilder) Tags(tags ...string) *publishBuilder { ... }
//	func (b *publishBuilder) Call() (*Post, error) { ... }
//
// The builder type is named after the function, keeping its case; use [Name]
// to export it. The Call finisher mirrors the function's results. When the
// function does not return an error but some parameter is required, Call
// appends an error result to report unset parameters.
//
// The function must be a package-level function and every parameter must be
// named. Variadic parameters are optional and forwarded expanded. Methods,
// function literals, and function-typed variables are not supported because
// the generated code cannot refer to them once the directive is erased.
func Func[F any](fn F, mod module, opts ...funcOption) func() F {
	panic("buildgen: not generated")
}

// Option configures how builders are generated. They are categorized by
// their concern:
//
//   - Naming: [Name], [Finish], and [SetterPrefix] name the builder type,
//     the finisher method, and derived setters. [Rename] overrides the
//     setter of a single member, while [RenameTrimCommonWordPrefix] and
//     [RenameTrimCommonWordSuffix] trim shared words before derivation.
//   - Requirement: [Optional], [Required], and [Default] override whether a
//     member must be set before finishing, and what value it takes when left
//     unset.
//
// Not every option can be applied to every directive. There are three scopes
// of options:
//
//  1. Module-level options: accepted by [Module].
//  2. Struct-level options: accepted by [Struct].
//  3. Func-level options: accepted by [Func].
//
// The type parameters of [Option] indicate which scopes the option can be
// applied to. For example, Option[no, yes, yes] can be applied to struct and
// func directives, but not to modules.
type Option[Module, Struct, Func canUseFor] interface {
	moduleOption() Module
	structOption() Struct
	funcOption() Func
}

// Path parameters indicate a specific member of a builder target. Struct
// fields can be indicated by selecting them on a value of the target type,
// such as a struct literal:
//
//	Post{}.Title
//	(&Post{}).Title
//	(*Post)(nil).Title
//
// Function parameters can be indicated by their name:
//
//	"title"
//
// Nested fields cannot be indicated. A builder sets members of the target
// itself only.
type Path = any

// Name overrides the name of the generated builder type. By default, the
// builder is named after the target with a Builder suffix, keeping the
// target's case:
//
//	// source:
//	var NewPost = buildgen.Struct[Post](nil, buildgen.Name("PostDraft"))
//
//	// generated: (simplified)
//	func NewPost() *PostDraft { return &PostDraft{} }
//
// The name must be an exported identifier and must not collide with another
// declaration in the package. Specifying this option twice reports an error.
func Name(name string) Option[no, yes, yes] {
	panic("buildgen: not generated")
}

// Finish overrides the name of the finisher method. Struct builders finish
// with Build and func builders finish with Call by default:
//
//	// source:
//	var NewPost = buildgen.Struct[Post](nil, buildgen.Finish("Publish"))
//
//	// generated: (simplified)
//	func (b *PostBuilder) Publish() (Post, error) { ... }
//
// The name must be an exported identifier. When this option is specified
// multiple times, the last one takes effect.
func Finish(name string) Option[yes, yes, yes] {
	panic("buildgen: not generated")
}

// SetterPrefix prefixes every derived setter name. A prefix makes setters
// read as verbs and keeps them apart from the target's own method set:
//
//	// source:
//	var NewPost = buildgen.Struct[Post](nil, buildgen.SetterPrefix("With"))
//
//	// generated: (simplified)
//	func (b *PostBuilder) WithTitle(title string) *PostBuilder { ... }
//	func (b *PostBuilder) WithBody(body string) *PostBuilder { ... }
//
// The prefix must be an exported identifier, or empty to reset a prefix
// inherited from the module. Setters renamed by [Rename] are not prefixed.
// When this option is specified multiple times, the last one takes effect.
func SetterPrefix(prefix string) Option[yes, yes, yes] {
	panic("buildgen: not generated")
}

// Rename overrides the derived setter name for a single member:
//
//	// source:
//	var NewPost = buildgen.Struct[Post](nil,
//		buildgen.Rename(Post{}.HTMLBody, "Body"),
//	)
//
//	// generated: (simplified)
//	func (b *PostBuilder) Body(htmlBody string) *PostBuilder { ... }
//
// The setter name must be an exported identifier. [SetterPrefix] and the
// trimming rules do not apply to renamed setters. Renaming two members to
// the same setter reports an error, as does renaming one member twice.
func Rename(member Path, setter string) Option[no, yes, yes] {
	panic("buildgen: not generated")
}

// RenameTrimCommonWordPrefix trims the longest common prefix of all member
// names, on word boundaries, before deriving setter names. It is useful for
// targets whose members repeat the target's name:
//
//	// source:
//	type Server struct {
//		ServerHost string
//		ServerPort int
//	}
//
//	var NewServer = buildgen.Struct[Server](nil,
//		buildgen.RenameTrimCommonWordPrefix(true),
//	)
//
//	// generated: (simplified)
//	func (b *ServerBuilder) Host(serverHost string) *ServerBuilder { ... }
//	func (b *ServerBuilder) Port(serverPort int) *ServerBuilder { ... }
//
// Builders with a single member are not trimmed because the whole name would
// be the common prefix. A member keeps its full name when trimming would not
// leave a valid one. When this option is specified multiple times, the last
// one takes effect.
func RenameTrimCommonWordPrefix(enable bool) Option[yes, yes, yes] {
	panic("buildgen: not generated")
}

// RenameTrimCommonWordSuffix trims the longest common suffix of all member
// names, on word boundaries, before deriving setter names.
//
// When this option is specified multiple times, the last one takes effect.
func RenameTrimCommonWordSuffix(enable bool) Option[yes, yes, yes] {
	panic("buildgen: not generated")
}

// Optional marks a member as optional so the finisher accepts it being left
// unset. The member keeps its zero value when no setter was called:
//
//	// source:
//	var NewPost = buildgen.Struct[Post](nil,
//		buildgen.Optional(Post{}.Subtitle),
//	)
//
// Members of a pointer type and variadic parameters are optional by default;
// every other member is required. When every member of a builder is
// optional, the finisher of a struct builder returns the bare target type
// without an error.
//
// Optional and [Required] cannot be specified twice for the same member.
func Optional(member Path) Option[no, yes, yes] {
	panic("buildgen: not generated")
}

// Required marks a member as required so the finisher reports
// buildgenerrors.ErrIncomplete when it was never set. It overrides the
// default classification of pointer members:
//
//	// source:
//	type Post struct {
//		Author *User
//	}
//
//	var NewPost = buildgen.Struct[Post](nil,
//		buildgen.Required(Post{}.Author),
//	)
//
// Variadic parameters accept zero arguments, so they cannot be required. A
// member with a [Default] cannot be required either.
//
// Required and [Optional] cannot be specified twice for the same member.
func Required(member Path) Option[no, yes, yes] {
	panic("buildgen: not generated")
}

// Default sets the value a member takes when no setter was called, and marks
// the member optional. The value expression is copied into the start
// function as written:
//
//	// source:
//	var NewPost = buildgen.Struct[Post](nil,
//		buildgen.Default(Post{}.Status, StatusDraft),
//	)
//
//	// generated: (simplified)
//	func NewPost() *PostBuilder {
//		return &PostBuilder{
//			status: StatusDraft,
//		}
//	}
//
// The value must be assignable to the member type. A member with a Default
// cannot be [Required], and a default cannot be specified twice for the same
// member.
func Default(member Path, value any) Option[no, yes, yes] {
	panic("buildgen: not generated")
}
