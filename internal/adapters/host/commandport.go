package host

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/kamal-hamza/mx-cli/internal/core/ports"
	"github.com/kamal-hamza/mx-cli/internal/log"
)

// DefaultAddress is where `commandPort -n ":7001" -sourceType "python"` listens
const DefaultAddress = "localhost:7001"

// DefaultTimeout bounds a single request when the context has no deadline
const DefaultTimeout = 30 * time.Second

// CommandPortHost implements the SceneHost port over Maya's commandPort.
//
// Every request is one Python expression terminated by a newline. The
// expression is wrapped in json.dumps so the reply, terminated by a NUL byte,
// is always JSON. A reply that is not JSON is Maya's error text.
type CommandPortHost struct {
	address string
	timeout time.Duration
	logger  *log.Logger
	dial    func(ctx context.Context, network, address string) (net.Conn, error)

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
}

// NewCommandPortHost creates a host adapter for the commandPort at address.
// The connection is opened lazily on the first request.
func NewCommandPortHost(address string, timeout time.Duration, logger *log.Logger) *CommandPortHost {
	if address == "" {
		address = DefaultAddress
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.Nop()
	}
	d := &net.Dialer{}
	return &CommandPortHost{
		address: address,
		timeout: timeout,
		logger:  logger,
		dial:    d.DialContext,
	}
}

// Ensure it implements the interface
var _ ports.SceneHost = (*CommandPortHost)(nil)

// CommandError is the error text Maya sent back instead of a result
type CommandError struct {
	Expr  string
	Reply string
}

func (e *CommandError) Error() string {
	return "maya: " + strings.TrimSpace(e.Reply)
}

// Close drops the connection; the next request reconnects
func (h *CommandPortHost) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closeLocked()
}

func (h *CommandPortHost) closeLocked() error {
	if h.conn == nil {
		return nil
	}
	err := h.conn.Close()
	h.conn = nil
	h.reader = nil
	return err
}

// Ping checks that the commandPort answers
func (h *CommandPortHost) Ping(ctx context.Context) error {
	var v string
	return h.eval(ctx, `__import__("maya.cmds").cmds.about(version=True)`, &v)
}

// eval sends expr and decodes the JSON reply into out (which may be nil)
func (h *CommandPortHost) eval(ctx context.Context, expr string, out any) error {
	reply, err := h.roundTrip(ctx, wrap(expr))
	if err != nil {
		return err
	}

	if !json.Valid([]byte(reply)) {
		return &CommandError{Expr: expr, Reply: reply}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(reply), out); err != nil {
		return fmt.Errorf("maya: unexpected reply %q: %w", reply, err)
	}
	return nil
}

func (h *CommandPortHost) roundTrip(ctx context.Context, request string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conn == nil {
		conn, err := h.dial(ctx, "tcp", h.address)
		if err != nil {
			return "", fmt.Errorf("failed to connect to commandPort %s: %w", h.address, err)
		}
		h.conn = conn
		h.reader = bufio.NewReader(conn)
		h.logger.Debugw("connected to commandPort", "address", h.address)
	}

	conn := h.conn
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(h.timeout)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		h.closeLocked()
		return "", err
	}

	// unblock IO when the context is cancelled before the deadline
	stop := context.AfterFunc(ctx, func() {
		conn.SetDeadline(time.Now())
	})
	defer stop()

	h.logger.Debugw("commandPort request", "expr", request)

	if _, err := conn.Write([]byte(request + "\n")); err != nil {
		h.closeLocked()
		return "", h.ioError(ctx, err)
	}

	reply, err := h.reader.ReadString(0)
	if err != nil {
		h.closeLocked()
		return "", h.ioError(ctx, err)
	}

	return strings.TrimRight(reply, "\x00\r\n"), nil
}

func (h *CommandPortHost) ioError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("commandPort %s timed out: %w", h.address, err)
	}
	return fmt.Errorf("commandPort %s: %w", h.address, err)
}

// SelectObjects selects names, clearing the selection first when asked
func (h *CommandPortHost) SelectObjects(ctx context.Context, names []string, clearFirst bool) error {
	return h.eval(ctx, selectExpr(names, clearFirst), nil)
}

// ExportSelection runs cmds.file(..., exportSelected=True)
func (h *CommandPortHost) ExportSelection(ctx context.Context, req ports.ExportRequest) error {
	return h.eval(ctx, exportExpr(req), nil)
}

// ImportOrReference runs cmds.file with i=True or r=True
func (h *CommandPortHost) ImportOrReference(ctx context.Context, req ports.ImportRequest) error {
	expr, err := importExpr(req)
	if err != nil {
		return err
	}
	return h.eval(ctx, expr, nil)
}

// NamespaceExists runs cmds.namespace(exists=name)
func (h *CommandPortHost) NamespaceExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	if err := h.eval(ctx, namespaceExistsExpr(name), &exists); err != nil {
		return false, err
	}
	return exists, nil
}

// RestoreMainWindowFocus runs cmds.setFocus("MayaWindow")
func (h *CommandPortHost) RestoreMainWindowFocus(ctx context.Context) error {
	return h.eval(ctx, focusExpr(), nil)
}

// AttributeExists runs cmds.objExists("object.attr")
func (h *CommandPortHost) AttributeExists(ctx context.Context, object, attr string) (bool, error) {
	var exists bool
	if err := h.eval(ctx, attrExistsExpr(object, attr), &exists); err != nil {
		return false, err
	}
	return exists, nil
}

// AttributeValue runs cmds.getAttr("object.attr")
func (h *CommandPortHost) AttributeValue(ctx context.Context, object, attr string) (any, error) {
	var value any
	if err := h.eval(ctx, attrValueExpr(object, attr), &value); err != nil {
		return nil, err
	}
	return value, nil
}

// AttributeType runs cmds.getAttr("object.attr", type=True)
func (h *CommandPortHost) AttributeType(ctx context.Context, object, attr string) (string, error) {
	var typ string
	if err := h.eval(ctx, attrTypeExpr(object, attr), &typ); err != nil {
		return "", err
	}
	return typ, nil
}
