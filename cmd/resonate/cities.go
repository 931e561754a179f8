package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"resonate/internal/core/domain"
	"resonate/internal/core/engine"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List configured cities and their geography",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadCities()
		if err != nil {
			return err
		}
		list := reg.List()
		if len(args) > 0 {
			list = list[:0]
			for _, id := range args {
				c, err := reg.Get(id)
				if err != nil {
					return fmt.Errorf("%s: %w", id, err)
				}
				list = append(list, c)
			}
		}

		p := message.NewPrinter(language.English)
		out := cmd.OutOrStdout()
		for _, c := range list {
			if err := printCity(p, out, c); err != nil {
				return err
			}
		}
		return nil
	},
}

func printCity(p *message.Printer, out io.Writer, c *domain.CityConfig) error {
	groups, err := engine.GroupsFor(c)
	if err != nil {
		return err
	}
	plural := c.Labels.UnitPlural
	if plural == "" {
		plural = "units"
	}
	p.Fprintf(out, "%s (%s): %d %s, %d languages, %d budget tiers\n",
		c.Name, c.ID, len(c.Geography.Units), plural, len(c.Languages), len(c.BudgetTiers))
	for _, g := range groups {
		var pop int64
		for _, u := range g.Units {
			pop += u.Population
		}
		name := g.Name
		if g.Implicit {
			name = c.CitywideLabel()
		}
		if pop > 0 {
			p.Fprintf(out, "  %-20s %3d  pop. %d\n", name, len(g.Units), pop)
		} else {
			p.Fprintf(out, "  %-20s %3d\n", name, len(g.Units))
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}
