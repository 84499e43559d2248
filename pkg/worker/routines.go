// Package worker pkg/worker/routines.go holds the discovery routines the
// pool dispatches to. Routine-level failures become the job's error
// status; per-item failures inside a routine are counted and absorbed so
// one bad row never discards the rest of a table.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/netip"
	"strconv"
	"time"

	"github.com/netminder/netminder/pkg/config"
	"github.com/netminder/netminder/pkg/models"
	"github.com/netminder/netminder/pkg/permission"
)

// nodeStaleness is how long after a fresh table walk an unrefreshed
// entry on the same switch is considered gone.
const nodeStaleness = 5 * time.Minute

var (
	errMissingDevice = errors.New("action requires a device")
	errMissingPort   = errors.New("action requires a port")
	errNotPermitted  = errors.New("device not permitted by access control")
)

// aclFor returns the allow/deny pair guarding an operation. Operations
// without their own pair share the discover lists.
func (p *Pool) aclFor(action models.JobAction) config.ACL {
	switch action {
	case models.ActionMacsuck:
		return p.cfg.Macsuck
	case models.ActionArpnip:
		return p.cfg.Arpnip
	case models.ActionNbtstat:
		return p.cfg.Nbtstat
	default:
		return p.cfg.Discover
	}
}

func (p *Pool) permitted(ip string, action models.JobAction) error {
	acl := p.aclFor(action)
	if !permission.IsPermitted(ip, acl.Only, acl.No) {
		return fmt.Errorf("%w: %s for %s", errNotPermitted, ip, action)
	}

	return nil
}

// statusWord maps an SNMP status integer to the stored word.
func statusWord(v *int64) string {
	if v == nil {
		return ""
	}

	if *v == 1 {
		return "up"
	}

	return "down"
}

func (p *Pool) discover(ctx context.Context, ip string) (string, error) {
	if ip == "" {
		return "", errMissingDevice
	}

	if err := p.permitted(ip, models.ActionDiscover); err != nil {
		return "", err
	}

	var reachNote string

	if p.prober != nil && !p.prober.Probe(ctx, ip) {
		reachNote = ", echo probe unanswered"
	}

	poller := p.factory(ip)

	info, err := poller.SystemInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("system info for %s: %w", ip, err)
	}

	device := &models.Device{
		IP:          ip,
		Name:        info.Name,
		Description: info.Description,
		Contact:     info.Contact,
		Location:    info.Location,
		SNMPVer:     p.cfg.SNMP.Version,
		SNMPComm:    p.cfg.SNMP.Community,
	}

	if info.Uptime != nil {
		uptime := int64(*info.Uptime)
		device.Uptime = &uptime
	}

	if info.Services != nil {
		device.Layers = models.LayersFromServices(*info.Services)
	}

	// Chassis identity is best-effort; plenty of devices lack the MIB.
	if inv, err := poller.Inventory(ctx); err == nil && inv != nil {
		device.Model = inv.Model
		device.Serial = inv.Serial
		device.Vendor = inv.MfgName
		device.OSVer = inv.SoftwareRev
	}

	if err := p.store.UpsertDevice(device); err != nil {
		return "", err
	}

	ports := 0

	if ifaces, err := poller.Interfaces(ctx); err == nil {
		for _, iface := range ifaces {
			port := iface.Name
			if port == "" {
				port = iface.Descr
			}

			if port == "" {
				port = fmt.Sprintf("if-%d", iface.Index)
			}

			descr := iface.Alias
			if descr == "" {
				descr = iface.Descr
			}

			row := &models.DevicePort{
				IP:      ip,
				Port:    port,
				Descr:   descr,
				Up:      statusWord(iface.OperStatus),
				UpAdmin: statusWord(iface.AdminStatus),
				IfIndex: iface.Index,
			}

			if iface.Type != nil {
				row.Type = strconv.FormatInt(*iface.Type, 10)
			}

			// ifSpeed saturates at 4.29 Gb/s; prefer the 64-bit-friendly
			// megabit counter when the agent offers one.
			switch {
			case iface.HighSpeed != nil && *iface.HighSpeed > 0:
				row.Speed = strconv.FormatInt(*iface.HighSpeed*1_000_000, 10)
			case iface.Speed != nil:
				row.Speed = strconv.FormatInt(*iface.Speed, 10)
			}

			if err := p.store.UpsertDevicePort(row); err != nil {
				log.Printf("discover %s: port %q not stored: %v", ip, port, err)
				continue
			}

			ports++
		}
	}

	neighbors := 0

	if seen, err := poller.Neighbors(ctx); err == nil {
		neighbors = len(seen)
	}

	if err := p.store.TouchLastOperation(ip, models.ActionDiscover, time.Now()); err != nil {
		log.Printf("discover %s: timestamp not updated: %v", ip, err)
	}

	return fmt.Sprintf("discovered %s: %d interfaces, %d neighbors%s", ip, ports, neighbors, reachNote), nil
}

func (p *Pool) macsuck(ctx context.Context, ip string) (string, error) {
	if ip == "" {
		return "", errMissingDevice
	}

	if err := p.permitted(ip, models.ActionMacsuck); err != nil {
		return "", err
	}

	entries, err := p.factory(ip).MacTable(ctx)
	if err != nil {
		return "", fmt.Errorf("mac table for %s: %w", ip, err)
	}

	stored := 0

	for _, entry := range entries {
		node := &models.Node{
			MAC:    entry.MAC,
			Switch: ip,
			Port:   fmt.Sprintf("bridge-port-%d", entry.BridgePort),
		}

		if err := p.store.UpsertNode(node); err != nil {
			log.Printf("macsuck %s: %s not stored: %v", ip, entry.MAC, err)
			continue
		}

		stored++
	}

	if _, err := p.store.DeactivateStaleNodes(ip, time.Now().Add(-nodeStaleness)); err != nil {
		log.Printf("macsuck %s: deactivation failed: %v", ip, err)
	}

	if err := p.store.TouchLastOperation(ip, models.ActionMacsuck, time.Now()); err != nil {
		log.Printf("macsuck %s: timestamp not updated: %v", ip, err)
	}

	return fmt.Sprintf("macsuck %s: stored %d of %d entries", ip, stored, len(entries)), nil
}

func (p *Pool) arpnip(ctx context.Context, ip string) (string, error) {
	if ip == "" {
		return "", errMissingDevice
	}

	if err := p.permitted(ip, models.ActionArpnip); err != nil {
		return "", err
	}

	entries, err := p.factory(ip).ArpTable(ctx)
	if err != nil {
		return "", fmt.Errorf("arp table for %s: %w", ip, err)
	}

	stored := 0

	for _, entry := range entries {
		// Addresses recovered from OID arcs can be garbage on broken
		// agents; such rows are counted, not fatal.
		if _, err := netip.ParseAddr(entry.IP); err != nil {
			log.Printf("arpnip %s: skipping unparseable address %q", ip, entry.IP)
			continue
		}

		if err := p.store.UpsertNodeIP(entry.MAC, entry.IP); err != nil {
			log.Printf("arpnip %s: %s/%s not stored: %v", ip, entry.MAC, entry.IP, err)
			continue
		}

		stored++
	}

	if err := p.store.TouchLastOperation(ip, models.ActionArpnip, time.Now()); err != nil {
		log.Printf("arpnip %s: timestamp not updated: %v", ip, err)
	}

	return fmt.Sprintf("arpnip %s: stored %d of %d entries", ip, stored, len(entries)), nil
}

// sweep runs a single-device routine across every eligible known device,
// tolerating individual failures.
func (p *Pool) sweep(ctx context.Context, action models.JobAction) (string, error) {
	devices, err := p.store.ListDevices()
	if err != nil {
		return "", err
	}

	start := time.Now()
	succeeded, total := 0, 0

	for i := range devices {
		device := &devices[i]

		switch action {
		case models.ActionMacwalk:
			if !device.IsSwitch() {
				continue
			}
		case models.ActionArpwalk:
			if !device.IsRouter() {
				continue
			}
		}

		total++

		var err error

		switch action {
		case models.ActionDiscoverAll:
			_, err = p.discover(ctx, device.IP)
		case models.ActionMacwalk:
			_, err = p.macsuck(ctx, device.IP)
		case models.ActionArpwalk:
			_, err = p.arpnip(ctx, device.IP)
		}

		if err != nil {
			log.Printf("%s: device %s failed: %v", action, device.IP, err)
			continue
		}

		succeeded++
	}

	// After a full ARP sweep, bindings the sweep did not refresh are gone.
	if action == models.ActionArpwalk && total > 0 {
		if _, err := p.store.DeactivateStaleNodeIPs(start); err != nil {
			log.Printf("%s: deactivation failed: %v", action, err)
		}
	}

	return fmt.Sprintf("%s: %d of %d devices succeeded", action, succeeded, total), nil
}

func (p *Pool) expire() (string, error) {
	type category struct {
		name string
		run  func(time.Duration) (int64, error)
		age  time.Duration
	}

	categories := []category{
		{name: "devices", run: p.store.ExpireDevices, age: time.Duration(p.cfg.Expire.Devices)},
		{name: "nodes", run: p.store.ExpireNodes, age: time.Duration(p.cfg.Expire.Nodes)},
		{name: "arps", run: p.store.ExpireNodeIPs, age: time.Duration(p.cfg.Expire.ArpEntries)},
		{name: "jobs", run: p.store.ExpireJobs, age: time.Duration(p.cfg.Expire.Jobs)},
		{name: "userlogs", run: p.store.ExpireUserLogs, age: time.Duration(p.cfg.Expire.UserLogs)},
	}

	summary := "expired"

	for _, cat := range categories {
		removed, err := cat.run(cat.age)
		if err != nil {
			log.Printf("expire: %s failed: %v", cat.name, err)

			summary += fmt.Sprintf(" %s=failed", cat.name)

			continue
		}

		summary += fmt.Sprintf(" %s=%d", cat.name, removed)
	}

	return summary, nil
}

func (p *Pool) deleteDevice(job *models.Job) (string, error) {
	if job.Device == "" {
		return "", errMissingDevice
	}

	if err := p.store.DeleteDevice(job.Device); err != nil {
		return "", err
	}

	if err := p.store.AddUserLog(job.Username, job.UserIP, "deleted device "+job.Device); err != nil {
		log.Printf("delete %s: user log not written: %v", job.Device, err)
	}

	return "deleted device " + job.Device + " and all dependent records", nil
}

func (p *Pool) nbtstat(ip string) (string, error) {
	if ip == "" {
		return "", errMissingDevice
	}

	if err := p.permitted(ip, models.ActionNbtstat); err != nil {
		return "", err
	}

	// NetBIOS queries are accepted for queue compatibility but not
	// performed; the outcome is recorded so operators can see why.
	return fmt.Sprintf("nbtstat %s: NetBIOS query skipped, support disabled", ip), nil
}

func (p *Pool) nbtwalk() (string, error) {
	return "nbtwalk: NetBIOS support disabled, no hosts queried", nil
}

// portAction validates and records a requested port change. Writing the
// change to the device is out of scope; the request is preserved in the
// job log and audit trail.
func (p *Pool) portAction(job *models.Job) (string, error) {
	if job.Device == "" {
		return "", errMissingDevice
	}

	if job.Port == "" {
		return "", errMissingPort
	}

	if job.Action != models.ActionPower && job.Subaction == "" {
		return "", fmt.Errorf("%s requires a subaction", job.Action)
	}

	if _, err := p.store.GetDevice(job.Device); err != nil {
		return "", err
	}

	event := fmt.Sprintf("%s %q requested on %s port %s", job.Action, job.Subaction, job.Device, job.Port)

	if err := p.store.AddUserLog(job.Username, job.UserIP, event); err != nil {
		log.Printf("%s: user log not written: %v", job.Action, err)
	}

	return event + " (device write support disabled)", nil
}

// report answers the informational actions from stored state.
func (p *Pool) report(job *models.Job) (string, error) {
	switch job.Action {
	case models.ActionShow:
		if job.Device == "" {
			return "", errMissingDevice
		}

		device, err := p.store.GetDevice(job.Device)
		if err != nil {
			return "", err
		}

		ports, err := p.store.ListDevicePorts(job.Device)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("show %s: name=%q layers=%q ports=%d", device.IP, device.DisplayName(), device.Layers, len(ports)), nil
	case models.ActionStats, models.ActionGraph:
		devices, err := p.store.ListDevices()
		if err != nil {
			return "", err
		}

		switches, routers := 0, 0

		for i := range devices {
			if devices[i].IsSwitch() {
				switches++
			}

			if devices[i].IsRouter() {
				routers++
			}
		}

		if job.Action == models.ActionGraph {
			return fmt.Sprintf("graph: %d devices (%d switches, %d routers); rendering disabled", len(devices), switches, routers), nil
		}

		return fmt.Sprintf("stats: %d devices, %d switches, %d routers", len(devices), switches, routers), nil
	case models.ActionLinter:
		if err := p.cfg.Validate(); err != nil {
			return "", err
		}

		return "linter: configuration checks passed", nil
	default:
		return "", fmt.Errorf("unknown report action %q", job.Action)
	}
}
