package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"rulesconsole/internal/api"
	"rulesconsole/internal/collections"
	"rulesconsole/internal/config"
	"rulesconsole/internal/logging"
	"rulesconsole/internal/models"
	"rulesconsole/internal/session"
	"rulesconsole/internal/upload"
	"rulesconsole/internal/view"
	"rulesconsole/internal/workflow"

	log "github.com/sirupsen/logrus"
)

type terminalNotifier struct{}

func (terminalNotifier) Notify(message, severity string) {
	fmt.Printf("[%s] %s\n", strings.ToUpper(severity), message)
}

type terminalConfirmer struct {
	in *bufio.Reader
}

func (t *terminalConfirmer) Confirm(message string) bool {
	fmt.Printf("%s [y/N]: ", message)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.Init(cfg.LogLevel)

	sess, err := session.New(cfg.AccessToken, cfg.UserID, cfg.UserRole)
	if err != nil {
		// No valid credential, back to login before any request
		log.Fatalf("Not logged in: %v", err)
	}

	client := api.NewClient(cfg.BaseURL, sess, cfg.HTTPTimeout)
	cache := collections.NewCache(client, sess)
	uploader := upload.NewCoordinator(client, cfg.UploadBaseURL)

	in := bufio.NewReader(os.Stdin)
	wf := workflow.New(client, cache, sess, uploader, terminalNotifier{}, &terminalConfirmer{in: in})
	defer wf.Dispose()

	ctx := context.Background()
	if err := wf.Initialize(ctx); err != nil {
		if errors.Is(err, api.ErrNoCredential) {
			log.Fatalf("Not logged in: %v", err)
		}
		os.Exit(1)
	}

	snap := wf.Collections()
	fmt.Println("RULES MANAGEMENT")
	view.RenderSummary(os.Stdout, snap)
	view.RenderRules(os.Stdout, snap.Rules)

	if !wf.CanCreate() {
		return
	}

	confirmer := &terminalConfirmer{in: in}
	if !confirmer.Confirm("Add New Rule?") {
		return
	}

	if err := runCreateForm(ctx, wf, in); err != nil {
		log.Errorf("Create rule failed: %v", err)
		os.Exit(1)
	}

	snap = wf.Collections()
	view.RenderRules(os.Stdout, snap.Rules)
}

func runCreateForm(ctx context.Context, wf *workflow.Workflow, in *bufio.Reader) error {
	d, err := wf.OpenForm()
	if err != nil {
		return err
	}

	snap := wf.Collections()

	fmt.Println("User Name:")
	view.RenderUserOptions(os.Stdout, snap.Users)
	if u := pickUser(in, snap.Users); u != nil {
		d.SetUser(u.ID, u.FullName)
	}

	fmt.Println("Device Name:")
	view.RenderDeviceOptions(os.Stdout, snap.Devices)
	if dev := pickDevice(in, snap.Devices); dev != nil {
		d.SetDevice(dev.ID, dev.Title)
	}

	fmt.Print("Email Status (Yes/No): ")
	status := readLine(in)
	if status == models.EmailStatusYes || status == models.EmailStatusNo {
		d.SetEmailStatus(status)
	}

	fmt.Print("Image file (empty for none): ")
	if path := readLine(in); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Warnf("Cannot read image %s: %v", path, err)
		} else {
			d.AttachFile(filepath.Base(path), content)
		}
	}

	return wf.Submit(ctx)
}

func readLine(in *bufio.Reader) string {
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func pickUser(in *bufio.Reader, users []models.User) *models.User {
	fmt.Print("Select user number (empty for none): ")
	n, err := strconv.Atoi(readLine(in))
	if err != nil || n < 1 || n > len(users) {
		return nil
	}
	return &users[n-1]
}

func pickDevice(in *bufio.Reader, devices []models.Device) *models.Device {
	fmt.Print("Select device number (empty for none): ")
	n, err := strconv.Atoi(readLine(in))
	if err != nil || n < 1 || n > len(devices) {
		return nil
	}
	return &devices[n-1]
}
