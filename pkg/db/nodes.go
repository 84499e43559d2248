// Package db pkg/db/nodes.go persists MAC sightings and MAC-to-IP
// bindings learned from macsuck and arpnip runs.
package db

import (
	"fmt"
	"time"

	"github.com/netminder/netminder/pkg/models"
)

// UpsertNode records a MAC sighting. A fresh sighting of an existing
// entry bumps time_last and reactivates it; time_first is preserved, and
// time_recent tracks the most recent transition back to active.
func (db *DB) UpsertNode(node *models.Node) error {
	const query = `
		INSERT INTO node (mac, switch, port, vlan, active, oui)
		VALUES (?, ?, ?, ?, 1, ?)
		ON CONFLICT(mac, switch, port, vlan) DO UPDATE SET
			time_last = CURRENT_TIMESTAMP,
			time_recent = CASE WHEN node.active = 0 THEN CURRENT_TIMESTAMP ELSE node.time_recent END,
			active = 1,
			oui = excluded.oui
	`

	_, err := db.Exec(query, node.MAC, node.Switch, node.Port, node.VLAN, models.ExtractOUI(node.MAC))
	if err != nil {
		return fmt.Errorf("%w node %s@%s: %w", ErrFailedToInsert, node.MAC, node.Switch, err)
	}

	return nil
}

// FindNodesByMAC returns every sighting of a MAC across all switches.
func (db *DB) FindNodesByMAC(mac string) ([]models.Node, error) {
	rows, err := db.Query(`
		SELECT mac, switch, port, vlan, active, oui, time_first, time_recent, time_last
		FROM node WHERE mac = ? ORDER BY time_last DESC`, mac)
	if err != nil {
		return nil, fmt.Errorf("%w nodes for %s: %w", ErrFailedToQuery, mac, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var nodes []models.Node

	for rows.Next() {
		var node models.Node

		var first, recent, last time.Time

		if err := rows.Scan(&node.MAC, &node.Switch, &node.Port, &node.VLAN,
			&node.Active, &node.OUI, &first, &recent, &last); err != nil {
			return nil, fmt.Errorf("%w node row: %w", ErrFailedToScan, err)
		}

		node.TimeFirst = &first
		node.TimeRecent = &recent
		node.TimeLast = &last

		nodes = append(nodes, node)
	}

	return nodes, rows.Err()
}

// DeactivateStaleNodes marks entries on one switch that were not seen in
// the latest macsuck run as inactive. Returns the number affected.
func (db *DB) DeactivateStaleNodes(switchIP string, cutoff time.Time) (int64, error) {
	// CURRENT_TIMESTAMP defaults are UTC strings; compare in UTC.
	result, err := db.Exec(
		"UPDATE node SET active = 0 WHERE switch = ? AND active = 1 AND time_last < ?",
		switchIP, cutoff.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w stale nodes on %s: %w", ErrFailedToUpdate, switchIP, err)
	}

	return result.RowsAffected()
}

// UpsertNodeIP records a MAC-to-IP binding from an ARP or NDP table.
func (db *DB) UpsertNodeIP(mac, ip string) error {
	const query = `
		INSERT INTO node_ip (mac, ip) VALUES (?, ?)
		ON CONFLICT(mac, ip) DO UPDATE SET
			time_last = CURRENT_TIMESTAMP,
			active = 1
	`

	if _, err := db.Exec(query, mac, ip); err != nil {
		return fmt.Errorf("%w node_ip %s/%s: %w", ErrFailedToInsert, mac, ip, err)
	}

	return nil
}

// FindNodeIPs returns the MAC bindings seen for an IP, newest first.
func (db *DB) FindNodeIPs(ip string) ([]models.NodeIP, error) {
	rows, err := db.Query(`
		SELECT mac, ip, active, time_first, time_last
		FROM node_ip WHERE ip = ? ORDER BY time_last DESC`, ip)
	if err != nil {
		return nil, fmt.Errorf("%w node_ips for %s: %w", ErrFailedToQuery, ip, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var bindings []models.NodeIP

	for rows.Next() {
		var binding models.NodeIP

		var first, last time.Time

		if err := rows.Scan(&binding.MAC, &binding.IP, &binding.Active, &first, &last); err != nil {
			return nil, fmt.Errorf("%w node_ip row: %w", ErrFailedToScan, err)
		}

		binding.TimeFirst = &first
		binding.TimeLast = &last

		bindings = append(bindings, binding)
	}

	return bindings, rows.Err()
}

// DeactivateStaleNodeIPs marks bindings older than the cutoff inactive.
func (db *DB) DeactivateStaleNodeIPs(cutoff time.Time) (int64, error) {
	result, err := db.Exec(
		"UPDATE node_ip SET active = 0 WHERE active = 1 AND time_last < ?",
		cutoff.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w stale node_ips: %w", ErrFailedToUpdate, err)
	}

	return result.RowsAffected()
}
