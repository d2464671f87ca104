package main

import (
	"flag"
	"fmt"
	"os"

	"ItemKeeper/internal/cli/api"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	server := flag.String("server", "http://localhost:3000", "base URL of the items server")
	apiKey := flag.String("api-key", os.Getenv("API_KEY"), "API key (defaults to API_KEY env)")
	list := flag.Bool("list", false, "list all items")
	add := flag.String("add", "", "create an item with the given name")
	flag.Parse()

	client := api.NewClient(*server, *apiKey)

	switch {
	case *add != "":
		it, err := client.CreateItem(*add)
		if err != nil {
			fmt.Fprintln(os.Stderr, "create failed:", err)
			os.Exit(1)
		}
		fmt.Printf("created %d\t%s\n", it.ID, it.Name)

	case *list:
		items, err := client.ListItems()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list failed:", err)
			os.Exit(1)
		}
		for _, it := range items {
			fmt.Printf("%d\t%s\n", it.ID, it.Name)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}
