package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/satzbau"
)

var declineArticle string

var declineCmd = &cobra.Command{
	Use:   "decline <template|key>",
	Short: "Print the declension table of a noun",
	Example: `  satzbau decline "der apfel, die äpfel, des apfels"
  satzbau decline --lexicon testdata/lexicon.toml --article negation see`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		article, err := satzbau.ParseArticleType(declineArticle)
		if err != nil {
			return err
		}
		lex, err := loadLexicon(conf.Lexicon)
		if err != nil {
			return err
		}
		n, err := resolveNoun(lex, args[0])
		if err != nil {
			return err
		}
		table := n.Article(article).Table()
		pterm.DefaultSection.Printf("%s (%s)", n.Singular().Nominative().Article(satzbau.NoArticle).Render(), table.Gender)
		return pterm.DefaultTable.
			WithHasHeader().
			WithData(declensionRows(table)).
			Render()
	},
}

func init() {
	declineCmd.Flags().StringVar(&declineArticle, "article", "definite", "article type: definite, indefinite, negation, none")
}

// declensionRows lays a table out with one row per case.
func declensionRows(t satzbau.DeclensionTable) pterm.TableData {
	rows := pterm.TableData{{"", "singular", "plural"}}
	for _, c := range satzbau.Cases {
		rows = append(rows, []string{c.String(), t.Get(c, satzbau.Singular), t.Get(c, satzbau.Plural)})
	}
	return rows
}
