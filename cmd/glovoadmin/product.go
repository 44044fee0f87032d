// Product commands for the glovoadmin CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courierworks/glovoadmin/pkg/types"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalog",
}

var (
	productSearch   string
	productCategory string
	productSort     string
	productDesc     bool
	productPage     int
	productPageSize int
)

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	Long: `List runs the products list pipeline: filter, sort, paginate.

Example:
  glovoadmin product list
  glovoadmin product list --search tajine --category Plats
  glovoadmin product list --sort price --desc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("product list", err)
		}
		defer st.Close()

		page, err := panel.Products(listState(productSearch, productSort, productDesc, productPage, productPageSize, map[string]string{
			"category": productCategory,
		}))
		if err != nil {
			fail("product list", err)
		}

		if flagJSON {
			printJSON(page)
			return nil
		}
		rows := make([][]string, 0, len(page.Records))
		for _, p := range page.Records {
			rows = append(rows, []string{
				fmt.Sprint(p.ID), truncate(p.Name, 30), p.Category,
				fmt.Sprintf("%.2f", p.Price), fmt.Sprint(p.Stock),
				truncate(p.Supplier, 25), fmt.Sprint(p.Available),
			})
		}
		printTable("ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tSUPPLIER\tAVAILABLE", rows, page.Total, page.State.Page, page.State.PageSize)
		return nil
	},
}

var productGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("product get", err)
		}
		defer st.Close()

		p, err := panel.Product(id)
		if err != nil {
			fail("product get", err)
		}

		if flagJSON {
			printJSON(p)
		} else {
			fmt.Printf("#%d %s (%s) %.2f MAD, stock=%d, supplier=%s, available=%v\n",
				p.ID, p.Name, p.Category, p.Price, p.Stock, p.Supplier, p.Available)
		}
		return nil
	},
}

var (
	productAddName      string
	productAddCategory  string
	productAddPrice     float64
	productAddStock     int
	productAddSupplier  string
	productAddAvailable bool
)

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new product",
	Long: `Add creates a product.

Example:
  glovoadmin product add --name "Couscous royal" --category Plats --price 85 --stock 25 --available`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("product add", err)
		}
		defer st.Close()

		p, err := panel.CreateProduct(types.Product{
			Name:      productAddName,
			Category:  productAddCategory,
			Price:     productAddPrice,
			Stock:     productAddStock,
			Supplier:  productAddSupplier,
			Available: productAddAvailable,
		})
		if err != nil {
			fail("product add", err)
		}

		if flagJSON {
			printJSON(p)
		} else {
			fmt.Printf("Created product %d\n", p.ID)
		}
		return nil
	},
}

var productUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a product's fields",
	Long: `Update replaces every field of the product except the id; the full
field set must be provided.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("product update", err)
		}
		defer st.Close()

		p, err := panel.UpdateProduct(id, types.Product{
			Name:      productAddName,
			Category:  productAddCategory,
			Price:     productAddPrice,
			Stock:     productAddStock,
			Supplier:  productAddSupplier,
			Available: productAddAvailable,
		})
		if err != nil {
			fail("product update", err)
		}

		if flagJSON {
			printJSON(p)
		} else {
			fmt.Printf("Updated product %d\n", id)
		}
		return nil
	},
}

var productDeleteYes bool

var productDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product (two-phase)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("product delete", err)
		}
		defer st.Close()

		panel.RequestDelete(types.CollectionProducts, id)
		if !productDeleteYes {
			panel.CancelDelete(types.CollectionProducts)
			fmt.Printf("Product %d not deleted; re-run with --yes to confirm\n", id)
			return nil
		}
		if err := panel.ConfirmDelete(types.CollectionProducts, id); err != nil {
			fail("product delete", err)
		}
		fmt.Printf("Deleted product %d\n", id)
		return nil
	},
}

func init() {
	productListCmd.Flags().StringVar(&productSearch, "search", "", "substring search over name and supplier")
	productListCmd.Flags().StringVar(&productCategory, "category", "", "filter by category")
	productListCmd.Flags().StringVar(&productSort, "sort", "", "sort column (id, name, category, price, stock, supplier, available)")
	productListCmd.Flags().BoolVar(&productDesc, "desc", false, "sort descending")
	productListCmd.Flags().IntVar(&productPage, "page", 1, "page number (1-indexed)")
	productListCmd.Flags().IntVar(&productPageSize, "page-size", 0, "records per page (default from config)")

	for _, c := range []*cobra.Command{productAddCmd, productUpdateCmd} {
		c.Flags().StringVar(&productAddName, "name", "", "product name")
		c.Flags().StringVar(&productAddCategory, "category", "", "category")
		c.Flags().Float64Var(&productAddPrice, "price", 0, "unit price")
		c.Flags().IntVar(&productAddStock, "stock", 0, "stock count")
		c.Flags().StringVar(&productAddSupplier, "supplier", "", "supplier name")
		c.Flags().BoolVar(&productAddAvailable, "available", false, "product is available")
	}
	_ = productAddCmd.MarkFlagRequired("name")
	_ = productAddCmd.MarkFlagRequired("price")

	productDeleteCmd.Flags().BoolVar(&productDeleteYes, "yes", false, "confirm the deletion")

	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productGetCmd)
	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productUpdateCmd)
	productCmd.AddCommand(productDeleteCmd)
}
