package events_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/formbuilder/pkg/events"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) HandleEvent(e *events.Event) {
	*r.log = append(*r.log, r.name+":"+string(e.Kind))
}

var _ = Describe("Handler Registry", func() {
	var (
		reg    events.HandlerRegistry
		record []string
	)

	BeforeEach(func() {
		record = nil
		reg = events.NewHandlerRegistry()
	})

	It("dispatches by kind", func() {
		reg.RegisterHandler(&recorder{"a", &record}, events.OBJECT_CREATED)
		reg.RegisterHandler(&recorder{"b", &record}, events.OBJECT_REMOVED, events.OBJECT_CREATED)

		reg.TriggerEvent(&events.Event{Kind: events.OBJECT_CREATED})
		reg.TriggerEvent(&events.Event{Kind: events.OBJECT_REMOVED})
		reg.TriggerEvent(&events.Event{Kind: events.PROJECT_SAVED})
		Expect(record).To(Equal([]string{"a:ObjectCreated", "b:ObjectCreated", "b:ObjectRemoved"}))
	})

	It("calls generic handlers after specific ones", func() {
		reg.RegisterHandler(&recorder{"all", &record})
		reg.RegisterHandler(&recorder{"a", &record}, events.PROJECT_LOADED)

		reg.TriggerEvent(&events.Event{Kind: events.PROJECT_LOADED})
		reg.TriggerEvent(&events.Event{Kind: events.CODE_GENERATION})
		Expect(record).To(Equal([]string{"a:ProjectLoaded", "all:ProjectLoaded", "all:CodeGeneration"}))
	})

	It("registers handlers once", func() {
		h := &recorder{"a", &record}
		reg.RegisterHandler(h, events.OBJECT_SELECTED)
		reg.RegisterHandler(h, events.OBJECT_SELECTED)
		reg.TriggerEvent(&events.Event{Kind: events.OBJECT_SELECTED})
		Expect(record).To(Equal([]string{"a:ObjectSelected"}))
	})

	It("unregisters handlers", func() {
		h := &recorder{"a", &record}
		reg.RegisterHandler(h, events.OBJECT_SELECTED, events.OBJECT_CREATED)
		reg.UnregisterHandler(h, events.OBJECT_SELECTED)
		reg.TriggerEvent(&events.Event{Kind: events.OBJECT_SELECTED})
		reg.TriggerEvent(&events.Event{Kind: events.OBJECT_CREATED})
		Expect(record).To(Equal([]string{"a:ObjectCreated"}))
	})

	It("accepts functions", func() {
		var got *events.Event
		reg.RegisterHandler(events.HandlerFunc(func(e *events.Event) { got = e }), events.PROPERTY_MODIFIED)
		e := &events.Event{Kind: events.PROPERTY_MODIFIED}
		reg.TriggerEvent(e)
		Expect(got).To(BeIdenticalTo(e))
	})
})
