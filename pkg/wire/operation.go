package wire

import "fmt"

// Operation is a 16-bit IPP operation code.
type Operation uint16

// Well-known operation codes (RFC 8011 and registered extensions).
const (
	OpPrintJob             Operation = 0x0002
	OpPrintURI             Operation = 0x0003
	OpValidateJob          Operation = 0x0004
	OpCreateJob            Operation = 0x0005
	OpSendDocument         Operation = 0x0006
	OpSendURI              Operation = 0x0007
	OpCancelJob            Operation = 0x0008
	OpGetJobAttributes     Operation = 0x0009
	OpGetJobs              Operation = 0x000a
	OpGetPrinterAttributes Operation = 0x000b
)

// operationNames maps operation codes to their registered names.
var operationNames = map[Operation]string{
	OpPrintJob:             "Print-Job",
	OpPrintURI:             "Print-URI",
	OpValidateJob:          "Validate-Job",
	OpCreateJob:            "Create-Job",
	OpSendDocument:         "Send-Document",
	OpSendURI:              "Send-URI",
	OpCancelJob:            "Cancel-Job",
	OpGetJobAttributes:     "Get-Job-Attributes",
	OpGetJobs:              "Get-Jobs",
	OpGetPrinterAttributes: "Get-Printer-Attributes",
	0x000c:                 "Hold-Job",
	0x000d:                 "Release-Job",
	0x000e:                 "Restart-Job",
	0x0010:                 "Pause-Printer",
	0x0011:                 "Resume-Printer",
	0x0012:                 "Purge-Jobs",
	0x0013:                 "Set-Printer-Attributes",
	0x0014:                 "Set-Job-Attributes",
	0x0015:                 "Get-Printer-Supported-Values",
	0x0016:                 "Create-Printer-Subscriptions",
	0x0017:                 "Create-Job-Subscriptions",
	0x0018:                 "Get-Subscription-Attributes",
	0x0019:                 "Get-Subscriptions",
	0x001a:                 "Renew-Subscription",
	0x001b:                 "Cancel-Subscription",
	0x001c:                 "Get-Notifications",
	0x001d:                 "Reserved (ipp-indp-method)",
	0x001e:                 "Reserved (ipp-get-resources)",
	0x001f:                 "Reserved (ipp-get-resources)",
	0x0020:                 "Reserved (ipp-get-resources)",
	0x0021:                 "Reserved (ipp-install)",
	0x0022:                 "Enable-Printer",
	0x0023:                 "Disable-Printer",
	0x0024:                 "Pause-Printer-After-Current-Job",
	0x0025:                 "Hold-New-Jobs",
	0x0026:                 "Release-Held-New-Jobs",
	0x0027:                 "Deactivate-Printer",
	0x0028:                 "Activate-Printer",
	0x0029:                 "Restart-Printer",
	0x002a:                 "Shutdown-Printer",
	0x002b:                 "Startup-Printer",
	0x002c:                 "Reprocess-Job",
	0x002d:                 "Cancel-Current-Job",
	0x002e:                 "Suspend-Current-Job",
	0x002f:                 "Resume-Job",
	0x0030:                 "Promote-Job",
	0x0031:                 "Schedule-Job-After",
	0x0033:                 "Cancel-Document",
	0x0034:                 "Get-Document-Attributes",
	0x0035:                 "Get-Documents",
	0x0036:                 "Delete-Document",
	0x0037:                 "Set-Document-Attributes",
	0x0038:                 "Cancel-Jobs",
	0x0039:                 "Cancel-My-Jobs",
	0x003a:                 "Resubmit-Job",
	0x003b:                 "Close-Job",
	0x003c:                 "Identify-Printer",
	0x003d:                 "Validate-Document",
	0x003e:                 "Add-Document-Images",
	0x003f:                 "Acknowledge-Document",
	0x0040:                 "Acknowledge-Identify-Printer",
	0x0041:                 "Acknowledge-Job",
	0x0042:                 "Fetch-Document",
	0x0043:                 "Fetch-Job",
	0x0044:                 "Get-Output-Device-Attributes",
	0x0045:                 "Update-Active-Jobs",
	0x0046:                 "Deregister-Output-Device",
	0x0047:                 "Update-Document-Status",
	0x0048:                 "Update-Job-Status",
	0x0049:                 "Update-Output-Device-Attributes",
	0x004a:                 "Get-Next-Document-Data",
	0x4001:                 "CUPS-Get-Default",
	0x4002:                 "CUPS-Get-Printers",
	0x4003:                 "CUPS-Add-Modify-Printer",
	0x4004:                 "CUPS-Delete-Printer",
	0x4005:                 "CUPS-Get-Classes",
	0x4006:                 "CUPS-Add-Modify-Class",
	0x4007:                 "CUPS-Delete-Class",
	0x4008:                 "CUPS-Accept-Jobs",
	0x4009:                 "CUPS-Reject-Jobs",
	0x400a:                 "CUPS-Set-Default",
	0x400b:                 "CUPS-Get-Devices",
	0x400c:                 "CUPS-Get-PPDs",
	0x400d:                 "CUPS-Move-Job",
	0x400e:                 "CUPS-Authenticate-Job",
	0x400f:                 "CUPS-Get-PPD",
	0x4027:                 "CUPS-Get-Document",
	0x4028:                 "CUPS-Create-Local-Printer",
}

// String returns the registered operation name, or the code in hex for
// unregistered operations.
func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint16(o))
}
