package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/actuallystonmai/storefront-assistant/internal/reply"
	"github.com/spf13/cobra"
)

func newSearchCmd(opts *options) *cobra.Command {
	var (
		category string
		minPrice float64
		maxPrice float64
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search products by text, category and price",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService(cmd)
			if err != nil {
				return err
			}

			filters := domain.Filters{Category: category}
			if cmd.Flags().Changed("min-price") {
				filters.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				filters.MaxPrice = &maxPrice
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			products, err := svc.Search(cmd.Context(), query, filters)
			if err != nil {
				return err
			}
			return opts.printer(cmd).Products(products)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "exact category")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price")
	return cmd
}

func newRecommendCmd(opts *options) *cobra.Command {
	var (
		preferences []string
		exclude     int64
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend products for a set of preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService(cmd)
			if err != nil {
				return err
			}

			var excludeID *int64
			if cmd.Flags().Changed("exclude") {
				excludeID = &exclude
			}
			products, err := svc.Recommend(cmd.Context(), preferences, excludeID)
			if err != nil {
				return err
			}
			return opts.printer(cmd).Products(products)
		},
	}

	cmd.Flags().StringSliceVarP(&preferences, "preferences", "p", nil, "preferred categories or tags")
	cmd.Flags().Int64Var(&exclude, "exclude", 0, "product id to leave out")
	return cmd
}

func newBoughtWithCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bought-with <product-id>",
		Short: "List products frequently bought with a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q: %w", args[0], err)
			}
			svc, err := opts.newService(cmd)
			if err != nil {
				return err
			}
			return opts.printer(cmd).Products(svc.FrequentlyBoughtWith(cmd.Context(), id))
		},
	}
}

func newChatCmd(opts *options) *cobra.Command {
	var (
		firstName   string
		preferences []string
		cartSpec    []string
	)

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Send one message to the shopping assistant",
		Long:  "Send one message to the shopping assistant. With no message, print the opening greeting, personalized when --name is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService(cmd)
			if err != nil {
				return err
			}

			lines, err := parseCartLines(cartSpec)
			if err != nil {
				return err
			}
			var user *domain.User
			if firstName != "" {
				user = &domain.User{FirstName: firstName, Preferences: preferences}
			}
			chat, err := svc.BuildChatContext(cmd.Context(), user, lines, nil)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return opts.printer(cmd).Opening(reply.Opening(chat))
			}

			resp, err := svc.ClassifyAndRespond(cmd.Context(), strings.Join(args, " "), chat)
			if err != nil {
				return err
			}
			return opts.printer(cmd).Chat(resp)
		},
	}

	cmd.Flags().StringVar(&firstName, "name", "", "signed-in user's first name")
	cmd.Flags().StringSliceVarP(&preferences, "preferences", "p", nil, "signed-in user's preferences")
	cmd.Flags().StringSliceVar(&cartSpec, "cart", nil, "cart lines as id:quantity")
	return cmd
}

// parseCartLines reads "id:quantity" pairs. A bare id means quantity 1.
func parseCartLines(specs []string) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0, len(specs))
	for _, spec := range specs {
		idStr, qtyStr, hasQty := strings.Cut(spec, ":")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cart line %q: %w", spec, err)
		}
		qty := 1
		if hasQty {
			qty, err = strconv.Atoi(qtyStr)
			if err != nil {
				return nil, fmt.Errorf("invalid cart line %q: %w", spec, err)
			}
		}
		lines = append(lines, domain.CartLine{ProductID: id, Quantity: qty})
	}
	return lines, nil
}
