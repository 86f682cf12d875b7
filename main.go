package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/rm-hull/paypal-api/cmd"
)

func main() {
	var dbPath string
	var port int
	var debug bool
	var requestId string

	rootCmd := &cobra.Command{
		Use:   "paypal",
		Short: "PayPal REST API client",
		Long: `Talks to the PayPal REST API using client credentials read from
PAYPAL_CLIENT_ID, PAYPAL_SECRET and PAYPAL_ENV (sandbox, live or a base URL).`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./data/paypal.db", "Path to the invoice sync database")

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Acquire and print an OAuth2 access token",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Token()
		},
	}

	apiServerCmd := &cobra.Command{
		Use:   "api-server [--db <path>] [--port <port>] [--debug]",
		Short: "Start HTTP API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.ApiServer(dbPath, port, debug)
		},
	}
	apiServerCmd.Flags().IntVar(&port, "port", 8080, "Port to run HTTP server on")
	apiServerCmd.Flags().BoolVar(&debug, "debug", false, "Enable debugging (pprof) - WARNING: do not enable in production")

	importCmd := &cobra.Command{
		Use:   "import [--db <path>]",
		Short: "Sync all invoices from PayPal into the local database",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Import(dbPath)
		},
	}

	rootCmd.AddCommand(tokenCmd, apiServerCmd, importCmd,
		ordersCommand(&requestId), invoicesCommand(), paymentsCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func ordersCommand(requestId *string) *cobra.Command {
	var opts cmd.CreateOrderOptions

	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Create and manage checkout orders",
	}
	ordersCmd.PersistentFlags().StringVar(requestId, "request-id", "", "PayPal-Request-Id idempotency key")

	createCmd := &cobra.Command{
		Use:   "create --value <amount> [--currency USD] [--intent CAPTURE]",
		Short: "Create an order with a single purchase unit",
		RunE: func(_ *cobra.Command, _ []string) error {
			opts.RequestId = *requestId
			return cmd.CreateOrder(opts)
		},
	}
	createCmd.Flags().StringVar(&opts.Intent, "intent", "CAPTURE", "CAPTURE or AUTHORIZE")
	createCmd.Flags().StringVar(&opts.Currency, "currency", "USD", "Three-letter currency code")
	createCmd.Flags().StringVar(&opts.Value, "value", "", "Order total, e.g. 100.00")
	createCmd.Flags().StringVar(&opts.Description, "description", "", "Purchase description")
	_ = createCmd.MarkFlagRequired("value")

	getCmd := &cobra.Command{
		Use:   "get <order-id>",
		Short: "Show order details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.GetOrder(args[0])
		},
	}

	captureCmd := &cobra.Command{
		Use:   "capture <order-id>",
		Short: "Capture payment for an approved order",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.CaptureOrder(args[0], *requestId)
		},
	}

	authorizeCmd := &cobra.Command{
		Use:   "authorize <order-id>",
		Short: "Authorize payment for an approved order",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.AuthorizeOrder(args[0], *requestId)
		},
	}

	ordersCmd.AddCommand(createCmd, getCmd, captureCmd, authorizeCmd)
	return ordersCmd
}

func invoicesCommand() *cobra.Command {
	var page, pageSize int
	var subject, note string
	var notify bool

	invoicesCmd := &cobra.Command{
		Use:   "invoices",
		Short: "List and manage invoices",
	}

	listCmd := &cobra.Command{
		Use:   "list [--page <n>] [--page-size <n>]",
		Short: "List invoices",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.ListInvoices(page, pageSize)
		},
	}
	listCmd.Flags().IntVar(&page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&pageSize, "page-size", 20, "Invoices per page")

	getCmd := &cobra.Command{
		Use:   "get <invoice-id>",
		Short: "Show invoice details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.GetInvoice(args[0])
		},
	}

	nextNumberCmd := &cobra.Command{
		Use:   "next-number",
		Short: "Generate the next invoice number",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.NextInvoiceNumber()
		},
	}

	sendCmd := &cobra.Command{
		Use:   "send <invoice-id>",
		Short: "Send a draft invoice to its recipient",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.SendInvoice(args[0], subject, note, notify)
		},
	}

	cancelCmd := &cobra.Command{
		Use:   "cancel <invoice-id>",
		Short: "Cancel a sent invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.CancelInvoice(args[0], subject, note, notify)
		},
	}

	for _, c := range []*cobra.Command{sendCmd, cancelCmd} {
		c.Flags().StringVar(&subject, "subject", "", "Email subject")
		c.Flags().StringVar(&note, "note", "", "Note to the recipient")
		c.Flags().BoolVar(&notify, "notify", true, "Email the recipient")
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <invoice-id>",
		Short: "Delete a draft invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.DeleteInvoice(args[0])
		},
	}

	invoicesCmd.AddCommand(listCmd, getCmd, nextNumberCmd, sendCmd, cancelCmd, deleteCmd)
	return invoicesCmd
}

func paymentsCommand() *cobra.Command {
	var final bool
	var currency, value string

	paymentsCmd := &cobra.Command{
		Use:   "payments",
		Short: "Manage authorized and captured payments",
	}

	authorizationCmd := &cobra.Command{
		Use:   "authorization <authorization-id>",
		Short: "Show an authorized payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.GetAuthorization(args[0])
		},
	}

	captureCmd := &cobra.Command{
		Use:   "capture <authorization-id>",
		Short: "Capture an authorized payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.CaptureAuthorization(args[0], final)
		},
	}
	captureCmd.Flags().BoolVar(&final, "final", true, "Mark this as the final capture")

	voidCmd := &cobra.Command{
		Use:   "void <authorization-id>",
		Short: "Void an authorized payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.VoidAuthorization(args[0])
		},
	}

	refundCmd := &cobra.Command{
		Use:   "refund <capture-id> [--value <amount> --currency <code>]",
		Short: "Refund a captured payment, in full unless a value is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.RefundCapture(args[0], currency, value)
		},
	}
	refundCmd.Flags().StringVar(&currency, "currency", "USD", "Three-letter currency code")
	refundCmd.Flags().StringVar(&value, "value", "", "Partial refund amount")

	paymentsCmd.AddCommand(authorizationCmd, captureCmd, voidCmd, refundCmd)
	return paymentsCmd
}
