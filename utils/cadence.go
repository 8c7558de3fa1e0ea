package utils

import (
	"context"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/openamr/surveillance-api/external/cadence"
)

// FIXME: there will be an import cycle if we use `github.com/openamr/surveillance-api/background/trend`
const TaskListName = "amr-trend-tasks"

const outbreakScanWorkflowID = "outbreak-scan"

// TriggerOutbreakScan is a helper function to send a signal to trigger
// the rolling outbreak detection workflow.
func TriggerOutbreakScan(client cadence.CadenceClient, c context.Context) error {
	_, err := client.SignalWithStartWorkflow(c,
		outbreakScanWorkflowID, "outbreakScanSignal", nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           outbreakScanWorkflowID,
			TaskList:                     TaskListName,
			ExecutionStartToCloseTimeout: time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, "OutbreakScanWorkflow")
	return err
}
