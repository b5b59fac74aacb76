package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/elegance/storefront/internal/domain"
	"github.com/elegance/storefront/internal/infrastructure/catalog"
	"github.com/elegance/storefront/internal/usecase"
	"github.com/spf13/cobra"
)

type listOptions struct {
	listing    string
	categories []string
	colors     []string
	sizes      []string
	discounts  []string
	minPrice   string
	maxPrice   string
	sort       string
}

func newRootCmd() *cobra.Command {
	var asJSON bool

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Browse the Elegance catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	root.AddCommand(newListCmd(&asJSON), newShowCmd(&asJSON), newSaleTabsCmd(&asJSON))
	return root
}

func newListCmd(asJSON *bool) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Filter and sort a listing",
		Long: `Runs the storefront filter engine over a listing.

Example:
  catalogctl list --listing sale --category Women --discount 20-40 --sort price-asc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newCatalogService()
			if err != nil {
				return err
			}
			criteria, err := opts.criteria(svc.Defaults())
			if err != nil {
				return err
			}
			products, err := svc.ListProducts(cmd.Context(), criteria)
			if err != nil {
				return err
			}
			if *asJSON {
				return writeJSON(cmd.OutOrStdout(), products)
			}
			return writeProducts(cmd.OutOrStdout(), products)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.listing, "listing", "all", "listing: all, new-arrivals or sale")
	flags.StringSliceVar(&opts.categories, "category", nil, "categories to include")
	flags.StringSliceVar(&opts.colors, "color", nil, "colors to include")
	flags.StringSliceVar(&opts.sizes, "size", nil, "sizes to include")
	flags.StringSliceVar(&opts.discounts, "discount", nil, "discount ranges as min-max")
	flags.StringVar(&opts.minPrice, "min-price", "", "lowest price")
	flags.StringVar(&opts.maxPrice, "max-price", "", "highest price")
	flags.StringVar(&opts.sort, "sort", "", "newest, price-asc, price-desc, name-asc, name-desc or discount-desc")
	return cmd
}

func newShowCmd(asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show [product-id]",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: product id %q", domain.ErrInvalidRequest, args[0])
			}
			svc, err := newCatalogService()
			if err != nil {
				return err
			}
			product, err := svc.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}
			if *asJSON {
				return writeJSON(cmd.OutOrStdout(), product)
			}
			return writeProducts(cmd.OutOrStdout(), []domain.Product{*product})
		},
	}
}

func newSaleTabsCmd(asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "sale-tabs",
		Short: "Group sale products by discount depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newCatalogService()
			if err != nil {
				return err
			}
			tabs, err := svc.SaleTabs(cmd.Context())
			if err != nil {
				return err
			}
			if *asJSON {
				return writeJSON(cmd.OutOrStdout(), tabs)
			}

			out := cmd.OutOrStdout()
			for _, tab := range []struct {
				name     string
				products []domain.Product
			}{
				{"All sale", tabs.All},
				{"Up to 30% off", tabs.UpTo30},
				{"Up to 50% off", tabs.UpTo50},
				{"Over 50% off", tabs.Over50},
			} {
				fmt.Fprintf(out, "%s (%d)\n", tab.name, len(tab.products))
				if err := writeProducts(out, tab.products); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

// criteria layers the flags over the listing defaults
func (o listOptions) criteria(defaults usecase.ListingDefaults) (domain.FilterCriteria, error) {
	return defaults.Build(usecase.CriteriaInput{
		Listing:    o.listing,
		Categories: o.categories,
		Colors:     o.colors,
		Sizes:      o.sizes,
		Discounts:  o.discounts,
		MinPrice:   o.minPrice,
		MaxPrice:   o.maxPrice,
		Sort:       o.sort,
	})
}

func newCatalogService() (*usecase.CatalogService, error) {
	products, err := catalog.NewStaticCatalog()
	if err != nil {
		return nil, err
	}
	return usecase.NewCatalogService(products, nil, usecase.CatalogServiceConfig{}, nil), nil
}

func writeProducts(w io.Writer, products []domain.Product) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tDISCOUNT\tNEW")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d%%\t%t\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Discount, p.IsNew)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
