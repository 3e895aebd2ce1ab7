package console_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirilv/termfolio/internal/console"
)

var _ = Describe("Registry", func() {
	var reg *console.Registry

	BeforeEach(func() {
		reg = testRegistry()
	})

	It("looks commands up ignoring case", func() {
		for _, name := range []string{"help", "HELP", "HeLp", " help "} {
			cmd, ok := reg.Lookup(name)
			Expect(ok).To(BeTrue(), name)
			Expect(cmd.Name).To(Equal("help"))
		}
		_, ok := reg.Lookup("nope")
		Expect(ok).To(BeFalse())
	})

	It("rejects duplicate names", func() {
		noop := script()
		_, err := console.NewRegistry(
			console.Command{Name: "ls", Run: noop},
			console.Command{Name: "LS", Run: noop},
		)
		Expect(errors.Is(err, console.ErrDuplicateCommand)).To(BeTrue())
	})

	It("rejects commands without a handler", func() {
		_, err := console.NewRegistry(console.Command{Name: "ls"})
		Expect(err).To(HaveOccurred())
	})

	It("keeps hidden commands out of the visible list", func() {
		var names []string
		for _, c := range reg.Visible() {
			names = append(names, c.Name)
		}
		Expect(names).NotTo(ContainElement("theme"))
		Expect(names).To(ContainElement("help"))
		Expect(reg.Names()).To(ContainElement("theme"))
	})

	It("derives completions from the registered names", func() {
		Expect(reg.Complete("he")).To(Equal([]string{"help", "hello"}))
		Expect(reg.Complete("SL")).To(Equal([]string{"slow"}))
		Expect(reg.Complete("zz")).To(BeEmpty())
		Expect(reg.Complete("")).To(Equal(reg.Names()))
	})

	It("parses the command name and arguments", func() {
		name, args := console.Parse("  SUDO  rm   -rf ")
		Expect(name).To(Equal("sudo"))
		Expect(args).To(Equal([]string{"rm", "-rf"}))

		name, args = console.Parse("   ")
		Expect(name).To(BeEmpty())
		Expect(args).To(BeNil())
	})

	It("reports unknown commands with a wrapped error", func() {
		actions, err := reg.Dispatch(&console.Context{}, "frobnicate now")
		Expect(errors.Is(err, console.ErrUnknownCommand)).To(BeTrue())

		var cerr *console.CommandError
		Expect(errors.As(err, &cerr)).To(BeTrue())
		Expect(cerr.Name).To(Equal("frobnicate"))
		Expect(actions).To(HaveLen(2))
	})

	It("passes arguments to handlers", func() {
		actions, err := reg.Dispatch(&console.Context{}, "echo a  b")
		Expect(err).NotTo(HaveOccurred())
		Expect(actions).To(Equal(console.PrintLines(console.Text(console.Plain, "a b"))))
	})
})
