package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lidestt/qe/internal/app"
	"github.com/lidestt/qe/internal/backend/client"
	"github.com/lidestt/qe/internal/host"
	"github.com/lidestt/qe/internal/system/config"
	"github.com/lidestt/qe/internal/system/log"
	"github.com/lidestt/qe/internal/view"
)

func main() {
	configPath := flag.String("config", "config/deployment.yaml", "Path to the deployment configuration file")
	flag.Parse()

	envFiles, err := filepath.Glob("config/*.env")
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.GetLogger().Warn("Failed to load config, using defaults", log.Error(err))
		cfg = config.GetConfig()
	}

	if err := log.Init(cfg.Log.LogLevel); err != nil {
		log.GetLogger().Fatal("Failed to initialize logger", log.Error(err))
	}

	scanner := bufio.NewScanner(os.Stdin)

	api := client.New(cfg)
	consoleView := view.NewConsole(os.Stdout, scanner)
	controller := app.NewController(api, consoleView, detectHost(cfg), cfg)

	controller.Start()
	runCommandLoop(controller, scanner)
}

// detectHost picks the Telegram host when the WebView handed over an init
// data payload, the standalone host otherwise.
func detectHost(cfg *config.Config) host.Host {
	if raw := os.Getenv("TELEGRAM_INIT_DATA"); raw != "" {
		return host.NewTelegramWebApp(raw, cfg)
	}
	return host.Standalone{}
}

// runCommandLoop reads UI intents from stdin and feeds them into the
// controller's dispatch surface, one at a time.
func runCommandLoop(controller *app.Controller, scanner *bufio.Scanner) {
	printHelp()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "accept":
			controller.AcceptRules()
		case "name":
			controller.SetName(arg)
		case "age":
			age, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("age expects a number")
				continue
			}
			controller.SetAge(age)
		case "gender":
			controller.SetGender(arg)
		case "show":
			controller.SetShowGender(arg)
		case "country":
			controller.SetCountry(arg)
		case "city":
			controller.SetCity(arg)
		case "submit":
			controller.SubmitRegistration()
		case "like":
			controller.HandleSwipe(true)
		case "dislike":
			controller.HandleSwipe(false)
		case "section":
			controller.ShowSection(arg)
		case "menu":
			controller.HandleMenuAction(arg)
		case "stats":
			controller.UpdateStats()
		case "continue":
			controller.ContinueAfterMatch()
		case "message":
			controller.SendMatchMessage()
		case "help":
			printHelp()
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q, try help\n", cmd)
		}
	}
}

func splitCommand(line string) (cmd, arg string) {
	parts := strings.SplitN(line, " ", 2)
	cmd = parts[0]
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

func printHelp() {
	fmt.Println(`commands:
  accept                      принять правила
  name|age|gender|show|country|city <value>
                              заполнить поле регистрации
  submit                      отправить регистрацию
  like / dislike              свайп
  section feed|likes|matches|profile
  menu myProfile|editProfile|buyPremium|logout
  stats                       обновить счетчики
  continue / message          действия в уведомлении о мэтче
  quit`)
}
