package doctree

// Command is a mutation captured for later execution, e.g. for queuing or
// batch application.
type Command interface {
	Execute()
}

// AddClassCommand defers a single AddClass(class) call on target. Executing
// the command twice appends the class twice, exactly like calling AddClass
// directly.
func AddClassCommand(target *Element, class string) Command {
	return addClassCommand{target: target, class: class}
}

type addClassCommand struct {
	target *Element
	class  string
}

func (c addClassCommand) Execute() {
	c.target.AddClass(c.class)
}
