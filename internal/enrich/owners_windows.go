//go:build windows

package enrich

import "context"

// Win32_Process.GetOwner is the only reliable pid -> account mapping on
// Windows; netstat itself never reports one.
const ownerQuery = `Get-CimInstance Win32_Process | ForEach-Object { ` +
	`$o = Invoke-CimMethod -InputObject $_ -MethodName GetOwner; ` +
	`'{0},{1}' -f $_.ProcessId, $o.User }`

func processOwners(ctx context.Context) (map[int]string, error) {
	out, err := runCommand(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", ownerQuery)
	if err != nil {
		return nil, err
	}
	return parseOwnerCSV(out), nil
}
