package command

// Processor executes commands and keeps them on an undo stack.
// Executing a new command discards all redoable commands.
type Processor struct {
	undo      []Command
	redo      []Command
	savePoint int
}

func NewProcessor() *Processor {
	return &Processor{}
}

func (p *Processor) Execute(c Command) {
	log.Debug("execute {{command}}", "command", c.String())
	c.Execute()
	if p.savePoint > len(p.undo) {
		// the save point was part of the discarded redo history
		p.savePoint = -1
	}
	p.undo = append(p.undo, c)
	p.redo = nil
}

// Undo reverts the last executed command. It returns false if there is
// nothing to undo.
func (p *Processor) Undo() bool {
	if len(p.undo) == 0 {
		return false
	}
	c := p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]
	log.Debug("undo {{command}}", "command", c.String())
	c.Restore()
	p.redo = append(p.redo, c)
	return true
}

func (p *Processor) Redo() bool {
	if len(p.redo) == 0 {
		return false
	}
	c := p.redo[len(p.redo)-1]
	p.redo = p.redo[:len(p.redo)-1]
	log.Debug("redo {{command}}", "command", c.String())
	c.Execute()
	p.undo = append(p.undo, c)
	return true
}

func (p *Processor) CanUndo() bool {
	return len(p.undo) > 0
}

func (p *Processor) CanRedo() bool {
	return len(p.redo) > 0
}

// Reset drops both stacks. The empty state is the new save point.
func (p *Processor) Reset() {
	p.undo = nil
	p.redo = nil
	p.savePoint = 0
}

func (p *Processor) SetSavePoint() {
	p.savePoint = len(p.undo)
}

// IsAtSavePoint reports whether the tree is in the state recorded by
// the last SetSavePoint or Reset.
func (p *Processor) IsAtSavePoint() bool {
	return p.savePoint == len(p.undo)
}

func (p *Processor) UndoCount() int {
	return len(p.undo)
}

func (p *Processor) RedoCount() int {
	return len(p.redo)
}
