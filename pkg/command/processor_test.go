package command_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/formbuilder/pkg/command"
)

// counter is a command modifying a plain integer.
type counter struct {
	value *int
	delta int
}

func (c *counter) Execute()       { *c.value += c.delta }
func (c *counter) Restore()       { *c.value -= c.delta }
func (c *counter) String() string { return "counter" }

var _ = Describe("Processor", func() {
	var (
		value int
		proc  *command.Processor
	)

	add := func(d int) command.Command {
		return &counter{value: &value, delta: d}
	}

	BeforeEach(func() {
		value = 0
		proc = command.NewProcessor()
	})

	It("starts empty at the save point", func() {
		Expect(proc.CanUndo()).To(BeFalse())
		Expect(proc.CanRedo()).To(BeFalse())
		Expect(proc.IsAtSavePoint()).To(BeTrue())
		Expect(proc.Undo()).To(BeFalse())
		Expect(proc.Redo()).To(BeFalse())
	})

	It("undoes and redoes", func() {
		proc.Execute(add(1))
		proc.Execute(add(10))
		Expect(value).To(Equal(11))

		Expect(proc.Undo()).To(BeTrue())
		Expect(value).To(Equal(1))
		Expect(proc.CanRedo()).To(BeTrue())

		Expect(proc.Undo()).To(BeTrue())
		Expect(value).To(Equal(0))
		Expect(proc.CanUndo()).To(BeFalse())

		Expect(proc.Redo()).To(BeTrue())
		Expect(proc.Redo()).To(BeTrue())
		Expect(value).To(Equal(11))
		Expect(proc.CanRedo()).To(BeFalse())
	})

	It("clears redo on execution", func() {
		proc.Execute(add(1))
		proc.Execute(add(10))
		proc.Undo()
		proc.Execute(add(100))
		Expect(value).To(Equal(101))
		Expect(proc.CanRedo()).To(BeFalse())
		Expect(proc.UndoCount()).To(Equal(2))
	})

	It("tracks the save point", func() {
		proc.Execute(add(1))
		Expect(proc.IsAtSavePoint()).To(BeFalse())
		proc.SetSavePoint()
		Expect(proc.IsAtSavePoint()).To(BeTrue())

		proc.Execute(add(10))
		Expect(proc.IsAtSavePoint()).To(BeFalse())
		proc.Undo()
		Expect(proc.IsAtSavePoint()).To(BeTrue())
		proc.Undo()
		Expect(proc.IsAtSavePoint()).To(BeFalse())
		proc.Redo()
		Expect(proc.IsAtSavePoint()).To(BeTrue())
	})

	It("loses a save point dropped with the redo history", func() {
		proc.Execute(add(1))
		proc.Execute(add(10))
		proc.SetSavePoint()
		proc.Undo()
		proc.Execute(add(100))
		Expect(proc.UndoCount()).To(Equal(2))
		Expect(proc.IsAtSavePoint()).To(BeFalse())
	})

	It("resets", func() {
		proc.Execute(add(1))
		proc.Undo()
		proc.Reset()
		Expect(proc.CanUndo()).To(BeFalse())
		Expect(proc.CanRedo()).To(BeFalse())
		Expect(proc.IsAtSavePoint()).To(BeTrue())
	})
})
