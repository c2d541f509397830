package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewCardCmd создаёт группу команд для управления карточками.
func NewCardCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage flashcards",
	}

	cmd.AddCommand(
		newCardListCmd(clientFn, outputFn),
		newCardCreateCmd(clientFn, outputFn),
		newCardShowCmd(clientFn, outputFn),
		newCardUpdateCmd(clientFn, outputFn),
		newCardDeleteCmd(clientFn, outputFn),
	)

	return cmd
}

var cardHeaders = []string{"ID", "QUESTION", "DECK", "TAGS", "DIFFICULTY", "CREATED"}

func cardRow(c FlashcardResponse) []string {
	return []string{c.ID, c.Question, c.Deck, strings.Join(c.Tags, ","), c.Difficulty, c.CreatedAt}
}

func newCardListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var deck string
	var tag string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List flashcards",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			cards, err := client.ListCards(ListCardsOpts{Deck: deck, Tag: tag, Limit: limit})
			if err != nil {
				return err
			}

			rows := make([][]string, len(cards))
			for i, c := range cards {
				rows[i] = cardRow(c)
			}

			out.Print(cardHeaders, rows, cards)
			return nil
		},
	}

	cmd.Flags().StringVar(&deck, "deck", "", "Filter by deck")
	cmd.Flags().StringVar(&tag, "tag", "", "Filter by tag")
	cmd.Flags().IntVar(&limit, "limit", 0, "Limit result count")

	return cmd
}

func newCardCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req CreateFlashcardRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new flashcard",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			card, err := client.CreateCard(req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Flashcard created: %s", card.ID))
			out.Print(cardHeaders, [][]string{cardRow(*card)}, card)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Question, "question", "", "Card question (required)")
	cmd.Flags().StringVar(&req.Answer, "answer", "", "Card answer (required)")
	cmd.Flags().StringVar(&req.Deck, "deck", "", "Deck name")
	cmd.Flags().StringSliceVar(&req.Tags, "tags", nil, "Tags (comma-separated)")
	cmd.Flags().StringVar(&req.Difficulty, "difficulty", "", "Difficulty level")
	cmd.MarkFlagRequired("question")
	cmd.MarkFlagRequired("answer")

	return cmd
}

func newCardShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show flashcard details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			card, err := client.GetCard(args[0])
			if err != nil {
				return err
			}

			out.Print(cardHeaders, [][]string{cardRow(*card)}, card)
			return nil
		},
	}
}

func newCardUpdateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req UpdateFlashcardRequest

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a flashcard (full replace)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			card, err := client.UpdateCard(args[0], req)
			if err != nil {
				return err
			}

			out.Success("Flashcard updated")
			out.Print(cardHeaders, [][]string{cardRow(*card)}, card)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Question, "question", "", "Card question (required)")
	cmd.Flags().StringVar(&req.Answer, "answer", "", "Card answer (required)")
	cmd.Flags().StringVar(&req.Deck, "deck", "", "Deck name")
	cmd.Flags().StringSliceVar(&req.Tags, "tags", nil, "Tags (comma-separated)")
	cmd.Flags().StringVar(&req.Difficulty, "difficulty", "", "Difficulty level")
	cmd.MarkFlagRequired("question")
	cmd.MarkFlagRequired("answer")

	return cmd
}

func newCardDeleteCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.DeleteCard(args[0]); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Flashcard deleted: %s", args[0]))
			return nil
		},
	}
}
