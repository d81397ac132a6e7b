package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/weddingbook/pkg/runner/mcp"
)

type mcpOptions struct {
	transport   string
	httpHost    string
	httpPort    int
	httpPath    string
	httpTLSCert string
	httpTLSKey  string
}

func addMCP(topLevel *cobra.Command) {
	o := &mcpOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the address book over the Model Context Protocol.",
		Long: `Launch an MCP server that lets an assistant list persons and weddings and
run address book commands. Changes are saved as they are made.`,
		Example: `
weddingbook mcp --transport stdio
weddingbook mcp --http-port 0
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			b, err := openBook(cmd.Context())
			if err != nil {
				return err
			}

			r, err := o.runner(mcp.NewService(b.engine(), b.persistence))
			if err != nil {
				return err
			}
			if r.Transport == mcp.TransportHTTP {
				r.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", o.listenURL(a))
				}
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&o.transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&o.httpHost, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&o.httpPort, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&o.httpPath, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&o.httpTLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&o.httpTLSKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}

func (o *mcpOptions) path() string {
	path := strings.TrimSpace(o.httpPath)
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func (o *mcpOptions) host() string {
	if host := strings.TrimSpace(o.httpHost); host != "" {
		return host
	}
	return "127.0.0.1"
}

func (o *mcpOptions) tls() bool {
	return strings.TrimSpace(o.httpTLSCert) != "" && strings.TrimSpace(o.httpTLSKey) != ""
}

func (o *mcpOptions) runner(svc *mcp.Service) (mcp.Runner, error) {
	r := mcp.Runner{
		Service:          svc,
		Name:             "weddingbook",
		Version:          "dev",
		HTTPEndpointPath: o.path(),
		HTTPServerCert:   strings.TrimSpace(o.httpTLSCert),
		HTTPServerKey:    strings.TrimSpace(o.httpTLSKey),
	}

	switch strings.ToLower(strings.TrimSpace(o.transport)) {
	case "", string(mcp.TransportHTTP):
		if o.httpPort < 0 || o.httpPort > 65535 {
			return r, fmt.Errorf("invalid http-port %d", o.httpPort)
		}
		r.Transport = mcp.TransportHTTP
		r.HTTPListenAddr = net.JoinHostPort(o.host(), strconv.Itoa(o.httpPort))
	case string(mcp.TransportStdio):
		r.Transport = mcp.TransportStdio
	default:
		return r, fmt.Errorf("unsupported transport %q (expected http or stdio)", o.transport)
	}
	return r, nil
}

// listenURL renders the address the server bound to. Wildcard hosts are
// shown as the bound IP, or loopback when that is unspecified too.
func (o *mcpOptions) listenURL(a net.Addr) string {
	tcpAddr, ok := a.(*net.TCPAddr)
	if !ok {
		return a.String() + o.path()
	}

	host := o.host()
	if host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
		if tcpAddr.IP != nil && !tcpAddr.IP.IsUnspecified() {
			host = tcpAddr.IP.String()
		}
	}

	scheme := "http"
	if o.tls() {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, net.JoinHostPort(host, strconv.Itoa(tcpAddr.Port)), o.path())
}
