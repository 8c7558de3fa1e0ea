package trend

import (
	"os"
	"testing"
)

var testWorker *OutbreakScanWorker

func TestMain(m *testing.M) {
	testWorker = NewOutbreakScanWorker("test", nil, nil)
	testWorker.Register()
	os.Exit(m.Run())
}
