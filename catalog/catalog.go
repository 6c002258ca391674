// Package catalog maps well-known port numbers to service names.
package catalog

// Unknown is returned for ports with no table entry.
const Unknown = "Unknown"

// services covers the common well-known and infrastructure ports. The names
// are conventional assignments; the actual service listening may differ.
var services = map[uint16]string{
	20:    "FTP-DATA",
	21:    "FTP",
	22:    "SSH",
	23:    "TELNET",
	25:    "SMTP",
	53:    "DNS",
	69:    "TFTP",
	80:    "HTTP",
	110:   "POP3",
	119:   "NNTP",
	123:   "NTP",
	143:   "IMAP",
	161:   "SNMP",
	194:   "IRC",
	443:   "HTTPS",
	993:   "IMAPS",
	995:   "POP3S",
	1433:  "MSSQL",
	1521:  "Oracle",
	3306:  "MySQL",
	3389:  "RDP",
	5432:  "PostgreSQL",
	5672:  "RabbitMQ",
	6379:  "Redis",
	9200:  "Elasticsearch",
	27017: "MongoDB",
}

// ServiceName returns the conventional service name for a port, or Unknown.
func ServiceName(port uint16) string {
	if name, ok := services[port]; ok {
		return name
	}
	return Unknown
}
