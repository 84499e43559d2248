// Package db pkg/db/db.go provides SQLite-backed persistence: device and
// node state plus the admin job queue that coordinates the worker pool.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/netminder/netminder/pkg/models"
)

const (
	// SQL statements for database initialization.
	createTablesSQL = `
	-- Network devices, keyed by management IP
	CREATE TABLE IF NOT EXISTS device (
		ip TEXT PRIMARY KEY,
		dns TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		contact TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		uptime INTEGER,
		layers TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		vendor TEXT NOT NULL DEFAULT '',
		os TEXT NOT NULL DEFAULT '',
		os_ver TEXT NOT NULL DEFAULT '',
		serial TEXT NOT NULL DEFAULT '',
		snmp_ver INTEGER NOT NULL DEFAULT 0,
		snmp_comm TEXT NOT NULL DEFAULT '',
		creation TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		last_discover TIMESTAMP,
		last_macsuck TIMESTAMP,
		last_arpnip TIMESTAMP
	);

	-- Interfaces per device
	CREATE TABLE IF NOT EXISTS device_port (
		ip TEXT NOT NULL,
		port TEXT NOT NULL,
		descr TEXT NOT NULL DEFAULT '',
		up TEXT NOT NULL DEFAULT '',
		up_admin TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT '',
		speed TEXT NOT NULL DEFAULT '',
		ifindex INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (ip, port)
	);

	-- MAC addresses seen on switch ports
	CREATE TABLE IF NOT EXISTS node (
		mac TEXT NOT NULL,
		switch TEXT NOT NULL,
		port TEXT NOT NULL,
		vlan TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT 1,
		oui TEXT NOT NULL DEFAULT '',
		time_first TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		time_recent TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		time_last TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (mac, switch, port, vlan)
	);

	-- MAC-to-IP bindings from ARP/NDP tables
	CREATE TABLE IF NOT EXISTS node_ip (
		mac TEXT NOT NULL,
		ip TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT 1,
		time_first TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		time_last TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (mac, ip)
	);

	-- The job queue
	CREATE TABLE IF NOT EXISTS admin (
		job INTEGER PRIMARY KEY AUTOINCREMENT,
		entered TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		started TIMESTAMP,
		finished TIMESTAMP,
		device TEXT NOT NULL DEFAULT '',
		port TEXT NOT NULL DEFAULT '',
		action TEXT NOT NULL,
		subaction TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'queued',
		username TEXT NOT NULL DEFAULT '',
		userip TEXT NOT NULL DEFAULT '',
		log TEXT NOT NULL DEFAULT '',
		debug BOOLEAN NOT NULL DEFAULT 0
	);

	-- Audit trail of user-visible events
	CREATE TABLE IF NOT EXISTS user_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL DEFAULT '',
		userip TEXT NOT NULL DEFAULT '',
		event TEXT NOT NULL DEFAULT '',
		creation TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Indexes for better query performance
	CREATE INDEX IF NOT EXISTS idx_admin_status_job
		ON admin(status, job);
	CREATE INDEX IF NOT EXISTS idx_node_switch_last
		ON node(switch, time_last);
	CREATE INDEX IF NOT EXISTS idx_node_mac
		ON node(mac);
	CREATE INDEX IF NOT EXISTS idx_node_ip_ip
		ON node_ip(ip);
	`
)

// DB represents the database connection and operations.
type DB struct {
	*sql.DB
}

// New creates a new database connection and initializes the schema.
func New(dbPath string) (Service, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToEnableWAL, err)
	}

	db := &DB{sqlDB}
	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	return db, nil
}

// initSchema creates the database tables if they don't exist.
func (db *DB) initSchema() error {
	_, err := db.Exec(createTablesSQL)

	return err
}

// UpsertDevice inserts or overwrites a device row. The creation timestamp
// of an existing row is preserved.
func (db *DB) UpsertDevice(device *models.Device) error {
	const query = `
		INSERT INTO device (ip, dns, name, description, contact, location,
			uptime, layers, model, vendor, os, os_ver, serial,
			snmp_ver, snmp_comm, last_discover, last_macsuck, last_arpnip)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ip) DO UPDATE SET
			dns = excluded.dns,
			name = excluded.name,
			description = excluded.description,
			contact = excluded.contact,
			location = excluded.location,
			uptime = excluded.uptime,
			layers = excluded.layers,
			model = excluded.model,
			vendor = excluded.vendor,
			os = excluded.os,
			os_ver = excluded.os_ver,
			serial = excluded.serial,
			snmp_ver = excluded.snmp_ver,
			snmp_comm = excluded.snmp_comm,
			last_discover = COALESCE(excluded.last_discover, device.last_discover),
			last_macsuck = COALESCE(excluded.last_macsuck, device.last_macsuck),
			last_arpnip = COALESCE(excluded.last_arpnip, device.last_arpnip)
	`

	_, err := db.Exec(query,
		device.IP, device.DNS, device.Name, device.Description,
		device.Contact, device.Location, device.Uptime, device.Layers,
		device.Model, device.Vendor, device.OS, device.OSVer, device.Serial,
		device.SNMPVer, device.SNMPComm,
		device.LastDiscover, device.LastMacsuck, device.LastArpnip,
	)
	if err != nil {
		return fmt.Errorf("%w device %s: %w", ErrFailedToInsert, device.IP, err)
	}

	return nil
}

const deviceColumns = `ip, dns, name, description, contact, location,
	uptime, layers, model, vendor, os, os_ver, serial, snmp_ver, snmp_comm,
	creation, last_discover, last_macsuck, last_arpnip`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDevice(row rowScanner) (*models.Device, error) {
	var device models.Device

	var uptime sql.NullInt64

	var lastDiscover, lastMacsuck, lastArpnip sql.NullTime

	err := row.Scan(
		&device.IP, &device.DNS, &device.Name, &device.Description,
		&device.Contact, &device.Location, &uptime, &device.Layers,
		&device.Model, &device.Vendor, &device.OS, &device.OSVer,
		&device.Serial, &device.SNMPVer, &device.SNMPComm,
		&device.Creation, &lastDiscover, &lastMacsuck, &lastArpnip,
	)
	if err != nil {
		return nil, err
	}

	if uptime.Valid {
		device.Uptime = &uptime.Int64
	}

	if lastDiscover.Valid {
		device.LastDiscover = &lastDiscover.Time
	}

	if lastMacsuck.Valid {
		device.LastMacsuck = &lastMacsuck.Time
	}

	if lastArpnip.Valid {
		device.LastArpnip = &lastArpnip.Time
	}

	return &device, nil
}

// GetDevice returns the device with the given IP.
func (db *DB) GetDevice(ip string) (*models.Device, error) {
	row := db.QueryRow("SELECT "+deviceColumns+" FROM device WHERE ip = ?", ip)

	device, err := scanDevice(row)
	if err == sql.ErrNoRows {
		return nil, ErrDeviceNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w device %s: %w", ErrFailedToScan, ip, err)
	}

	return device, nil
}

// ListDevices returns all known devices.
func (db *DB) ListDevices() ([]models.Device, error) {
	rows, err := db.Query("SELECT " + deviceColumns + " FROM device ORDER BY dns, ip")
	if err != nil {
		return nil, fmt.Errorf("%w devices: %w", ErrFailedToQuery, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var devices []models.Device

	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w device row: %w", ErrFailedToScan, err)
		}

		devices = append(devices, *device)
	}

	return devices, rows.Err()
}

// DeleteDevice removes a device and every dependent row in one
// transaction, so a half-deleted device can never be observed.
func (db *DB) DeleteDevice(ip string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}

	for _, stmt := range []string{
		"DELETE FROM node WHERE switch = ?",
		"DELETE FROM device_port WHERE ip = ?",
		"DELETE FROM admin WHERE device = ? AND status = 'queued'",
		"DELETE FROM device WHERE ip = ?",
	} {
		if _, err := tx.Exec(stmt, ip); err != nil {
			_ = tx.Rollback()

			return fmt.Errorf("%w device %s: %w", ErrFailedToDelete, ip, err)
		}
	}

	return tx.Commit()
}

// TouchLastOperation records a successful poll of the given kind.
func (db *DB) TouchLastOperation(ip string, action models.JobAction, when time.Time) error {
	var query string

	switch action {
	case models.ActionDiscover:
		query = "UPDATE device SET last_discover = ? WHERE ip = ?"
	case models.ActionMacsuck:
		query = "UPDATE device SET last_macsuck = ? WHERE ip = ?"
	case models.ActionArpnip:
		query = "UPDATE device SET last_arpnip = ? WHERE ip = ?"
	default:
		return fmt.Errorf("%w: no timestamp column for action %q", ErrFailedToUpdate, action)
	}

	if _, err := db.Exec(query, when, ip); err != nil {
		return fmt.Errorf("%w last_%s for %s: %w", ErrFailedToUpdate, action, ip, err)
	}

	return nil
}

// UpsertDevicePort inserts or refreshes one interface row.
func (db *DB) UpsertDevicePort(port *models.DevicePort) error {
	const query = `
		INSERT INTO device_port (ip, port, descr, up, up_admin, type, speed, ifindex)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ip, port) DO UPDATE SET
			descr = excluded.descr,
			up = excluded.up,
			up_admin = excluded.up_admin,
			type = excluded.type,
			speed = excluded.speed,
			ifindex = excluded.ifindex
	`

	_, err := db.Exec(query,
		port.IP, port.Port, port.Descr, port.Up, port.UpAdmin,
		port.Type, port.Speed, port.IfIndex,
	)
	if err != nil {
		return fmt.Errorf("%w port %s on %s: %w", ErrFailedToInsert, port.Port, port.IP, err)
	}

	return nil
}

// ListDevicePorts returns the interfaces of one device.
func (db *DB) ListDevicePorts(ip string) ([]models.DevicePort, error) {
	rows, err := db.Query(
		"SELECT ip, port, descr, up, up_admin, type, speed, ifindex FROM device_port WHERE ip = ? ORDER BY ifindex",
		ip,
	)
	if err != nil {
		return nil, fmt.Errorf("%w ports for %s: %w", ErrFailedToQuery, ip, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ports []models.DevicePort

	for rows.Next() {
		var port models.DevicePort

		if err := rows.Scan(&port.IP, &port.Port, &port.Descr, &port.Up,
			&port.UpAdmin, &port.Type, &port.Speed, &port.IfIndex); err != nil {
			return nil, fmt.Errorf("%w port row: %w", ErrFailedToScan, err)
		}

		ports = append(ports, port)
	}

	return ports, rows.Err()
}

// AddUserLog appends one audit trail entry.
func (db *DB) AddUserLog(username, userIP, event string) error {
	_, err := db.Exec(
		"INSERT INTO user_log (username, userip, event) VALUES (?, ?, ?)",
		username, userIP, event,
	)
	if err != nil {
		return fmt.Errorf("%w user log: %w", ErrFailedToInsert, err)
	}

	return nil
}
