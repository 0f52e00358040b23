package initializers

import (
	"log"
	"os"

	"github.com/ammafood/amma-api/services"
	"github.com/ammafood/amma-api/store"
)

// InitDataService wires the data service: file-backed local cache, the
// remote tier when connected, and the sheets dispatcher.
func InitDataService() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	local, err := store.NewFileStore(dataDir)
	if err != nil {
		log.Fatal("Could not create local data store: ", err)
	}

	var remote store.Remote
	if DB != nil {
		remote = store.NewGormRemote(DB)
	}

	services.Default = services.New(local, remote, services.NewSheetsDispatcher())
}
