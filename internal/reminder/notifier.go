package reminder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"
)

// AgentNotifier delivers trigger scheduling to a local notification agent
// over its loopback webhook. The agent writes a lockfile containing its
// port, PID, and shared secret; the PID is validated against the process
// table before anything is sent.
type AgentNotifier struct {
	LockfilePath string
	AgentName    string
}

var findProcessFunc = ps.FindProcess

type agentRequest struct {
	Action string `json:"action"` // "schedule", "cancel", "cancel_all"
	ID     string `json:"id,omitempty"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
}

func (n *AgentNotifier) Schedule(ctx context.Context, t Trigger) error {
	return n.send(ctx, agentRequest{Action: "schedule", ID: t.ID, Hour: t.Hour, Minute: t.Minute})
}

func (n *AgentNotifier) Cancel(ctx context.Context, id string) error {
	return n.send(ctx, agentRequest{Action: "cancel", ID: id})
}

func (n *AgentNotifier) CancelAll(ctx context.Context) error {
	return n.send(ctx, agentRequest{Action: "cancel_all"})
}

func (n *AgentNotifier) send(ctx context.Context, req agentRequest) error {
	port, secret, err := n.findAndValidateAgent()
	if err != nil {
		return err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("http://127.0.0.1:%s", port), bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Dailyq-Secret", secret)

	res, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(res.Body)
	return fmt.Errorf("reminder agent returned status %d: %s", res.StatusCode, string(msg))
}

func (n *AgentNotifier) findAndValidateAgent() (string, string, error) {
	content, err := os.ReadFile(n.LockfilePath)
	if err != nil {
		return "", "", errors.New("reminder agent is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("reminder agent lockfile is malformed")
	}

	port := strings.TrimSpace(parts[0])
	portNum, err := strconv.Atoi(port)
	if err != nil || portNum < 1 || portNum > 65535 {
		return "", "", errors.New("invalid port in reminder agent lockfile")
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in reminder agent lockfile")
	}

	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in reminder agent lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("reminder agent process not running")
	}
	if !strings.HasPrefix(process.Executable(), n.AgentName) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)", pid, n.AgentName, process.Executable())
	}

	return port, secret, nil
}
