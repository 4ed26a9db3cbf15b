package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/lindenb1/impress/internal/client"
	"github.com/lindenb1/impress/internal/locale"
	"github.com/lindenb1/impress/internal/members"
	"github.com/lindenb1/impress/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func main() {
	server := flag.String("server", "http://localhost:8071", "documents API base url")
	docID := flag.String("doc", "", "document id")
	lang := flag.String("lang", "", "initial language, defaults to the server default")
	window := flag.Int("window", 10, "rows shown per screen")
	threshold := flag.Int("threshold", 3, "rows left before the next page is fetched")
	pageSize := flag.Int("page-size", 0, "accesses per page, 0 for the server default")
	env := flag.String("env", "prod", "logging mode: dev or prod")
	flag.Parse()

	if *docID == "" {
		log.Fatal("doc is required")
	}

	if err := logger.InitLogger(*env); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *server, *docID, *lang, *window, *threshold, *pageSize); err != nil {
		logger.Error("members exited", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, server, docID, lang string, window, threshold, pageSize int) error {
	var store *locale.Store

	api, err := client.New(server,
		client.WithPageSize(pageSize),
		client.WithLanguage(func() string {
			if store == nil {
				return ""
			}
			return store.Language()
		}),
	)
	if err != nil {
		return err
	}

	cfg, err := api.FetchConfig(ctx)
	if err != nil {
		return fmt.Errorf("fetch config: %w", err)
	}

	codes := make([]string, 0, len(cfg.Languages))
	for _, l := range cfg.Languages {
		codes = append(codes, l.Code)
	}
	if lang == "" {
		lang = cfg.LanguageCode
	}
	if store, err = locale.NewStore(codes, lang); err != nil {
		return err
	}

	out := os.Stdout
	store.Subscribe(func(tag language.Tag) { renderLanguageChange(out, tag) })

	selector := locale.NewSelector(store, logger.Named("locale"))
	list := members.NewList(api, members.WithLogger(logger.Named("members")))
	scroll := members.NewInfiniteScroll(list, threshold)

	// A failed first page is rendered as the error view.
	_ = list.Open(ctx, docID)

	in := bufio.NewScanner(os.Stdin)
	offset := 0

	for {
		view := list.View()
		shown := renderView(out, store.Printer(), view, offset, window)
		fmt.Fprint(out, "[enter] more  [l <code>] language  [q] quit > ")

		if !in.Scan() {
			return in.Err()
		}

		switch cmd := parseCommand(in.Text()); cmd.name {
		case "q", "quit":
			return nil
		case "l", "lang":
			if cmd.arg == "" {
				renderLanguages(out, store.Printer(), selector.Options())
				continue
			}
			<-selector.Select(ctx, cmd.arg)
		case "next":
			if view.Status != members.StatusReady {
				continue
			}
			if offset+shown < len(view.Rows) {
				offset += shown
			}
			_, end := visibleRange(len(view.Rows), offset, window)
			_, _ = scroll.Notify(ctx, members.Viewport{LastVisible: end - 1, Total: len(view.Rows)})
		default:
			fmt.Fprintf(out, "unknown command %q\n", cmd.name)
		}
	}
}
