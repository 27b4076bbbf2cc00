package batch

// builtin holds the IRS TEOS bulk XML releases known to this tool, keyed by
// the directory name the release unpacks to.
var builtin = map[string]Provenance{
	// 2017
	"2017_TEOS_XML_CT1": {Year: "2017", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2017/2017_TEOS_XML_CT1.zip", DownloadDate: "2025-03-05", ArchiveName: "2017_TEOS_XML_CT1.zip"},
	"download990xml_2017_1": {Year: "2017", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2017/download990xml_2017_1.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2018_1.zip"},
	"download990xml_2017_2": {Year: "2017", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2017/download990xml_2017_2.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2017_2.zip"},
	"download990xml_2017_3": {Year: "2017", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2017/download990xml_2017_3.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2017_3.zip"},
	"download990xml_2017_4": {Year: "2017", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2017/download990xml_2017_4.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2017_4.zip"},
	"download990xml_2017_5": {Year: "2017", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2017/download990xml_2017_5.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2017_5.zip"},
	"download990xml_2017_6": {Year: "2017", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2017/download990xml_2017_6.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2017_6.zip"},
	"download990xml_2017_7": {Year: "2017", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2017/download990xml_2017_7.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2017_7.zip"},

	// 2018
	"2018_TEOS_XML_CT1": {Year: "2018", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2018/2018_TEOS_XML_CT1.zip", DownloadDate: "2025-03-05", ArchiveName: "2018_TEOS_XML_CT1.zip"},
	"2018_TEOS_XML_CT2": {Year: "2018", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2018/2018_TEOS_XML_CT2.zip", DownloadDate: "2025-03-11", ArchiveName: "2018_TEOS_XML_CT2.zip"},
	"2018_TEOS_XML_CT3": {Year: "2018", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2018/2018_TEOS_XML_CT3.zip", DownloadDate: "2025-03-11", ArchiveName: "2018_TEOS_XML_CT3.zip"},
	"download990xml_2018_1": {Year: "2018", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2018/download990xml_2018_1.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2018_1.zip"},
	"download990xml_2018_2": {Year: "2018", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2018/download990xml_2018_2.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2018_2.zip"},
	"download990xml_2018_3": {Year: "2018", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2018/download990xml_2018_3.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2018_3.zip"},
	"download990xml_2018_4": {Year: "2018", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2018/download990xml_2018_4.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2018_4.zip"},
	"download990xml_2018_5": {Year: "2018", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2018/download990xml_2018_5.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2018_5.zip"},
	"download990xml_2018_6": {Year: "2018", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2018/download990xml_2018_6.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2018_6.zip"},
	"download990xml_2018_7": {Year: "2018", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2018/download990xml_2018_7.zip", DownloadDate: "2025-03-05", ArchiveName: "download990xml_2018_7.zip"},

	// 2019
	"2019_TEOS_XML_CT1": {Year: "2019", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2019/2019_TEOS_XML_CT1.zip", DownloadDate: "2025-04-16", ArchiveName: "2019_TEOS_XML_CT1.zip"},
	"download990xml_2019_1": {Year: "2019", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2019/download990xml_2019_1.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2019_1.zip"},
	"download990xml_2019_2": {Year: "2019", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2019/download990xml_2019_2.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2019_2.zip"},
	"download990xml_2019_3": {Year: "2019", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2019/download990xml_2019_3.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2019_3.zip"},
	"download990xml_2019_4": {Year: "2019", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2019/download990xml_2019_4.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2019_4.zip"},
	"download990xml_2019_5": {Year: "2019", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2019/download990xml_2019_5.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2019_5.zip"},
	"download990xml_2019_6": {Year: "2019", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2019/download990xml_2019_6.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2019_6.zip"},
	"download990xml_2019_7": {Year: "2019", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2019/download990xml_2019_7.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2019_7.zip"},
	"download990xml_2019_8": {Year: "2019", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2019/download990xml_2019_8.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2019_8.zip"},

	// 2020
	"2020_TEOS_XML_CT1": {Year: "2020", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2020/2020_TEOS_XML_CT1.zip", DownloadDate: "2025-04-16", ArchiveName: "2020_TEOS_XML_CT1.zip"},
	"download990xml_2020_1": {Year: "2020", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2020/download990xml_2020_1.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2020_1.zip"},
	"download990xml_2020_2": {Year: "2020", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2020/download990xml_2020_2.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2020_2.zip"},
	"download990xml_2020_3": {Year: "2020", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2020/download990xml_2020_3.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2020_3.zip"},
	"download990xml_2020_4": {Year: "2020", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2020/download990xml_2020_4.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2020_4.zip"},
	"download990xml_2020_5": {Year: "2020", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2020/download990xml_2020_5.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2020_5.zip"},
	"download990xml_2020_6": {Year: "2020", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2020/download990xml_2020_6.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2020_6.zip"},
	"download990xml_2020_7": {Year: "2020", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2020/download990xml_2020_7.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2020_7.zip"},
	"download990xml_2020_8": {Year: "2020", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2020/download990xml_2020_8.zip", DownloadDate: "2025-04-16", ArchiveName: "download990xml_2020_8.zip"},

	// 2021
	"2021Redo_allCycles": {Year: "2021", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2021/2021_TEOS_XML_01A.zip", DownloadDate: "2025-03-11", ArchiveName: "2021_TEOS_XML_01A.zip"},

	// 2022
	"2022Redo_cycle01_41": {Year: "2022", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2022/2022_TEOS_XML_01A.zip", DownloadDate: "2025-03-11", ArchiveName: "2022_TEOS_XML_01A.zip"},
	"2022_TEOS_XML_11A": {Year: "2022", Source: "https://web.archive.org/web/20240806044052/https://apps.irs.gov/pub/epostcard/990/xml/2022/2022_TEOS_XML_11A.zip", DownloadDate: "2025-03-20", ArchiveName: "2022_TEOS_XML_11A.zip"},
	"2022_TEOS_XML_11B": {Year: "2022", Source: "https://web.archive.org/web/20240806044052/https://apps.irs.gov/pub/epostcard/990/xml/2022/2022_TEOS_XML_11B.zip", DownloadDate: "2025-03-20", ArchiveName: "2022_TEOS_XML_11B.zip"},
	"2022_TEOS_XML_11C": {Year: "2022", Source: "https://web.archive.org/web/20240806044052/https://apps.irs.gov/pub/epostcard/990/xml/2022/2022_TEOS_XML_11C.zip", DownloadDate: "2025-03-20", ArchiveName: "2022_TEOS_XML_11C.zip"},

	// 2023
	"2023_TEOS_XML_01A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_01A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_01A.zip"},
	"2023_TEOS_XML_02A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_02A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_02A.zip"},
	"2023_TEOS_XML_03A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_03A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_03A.zip"},
	"2023_TEOS_XML_04A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_04A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_04A.zip"},
	"2023_TEOS_XML_05A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_05A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_05A.zip"},
	"2023_TEOS_XML_06A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_06A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_06A.zip"},
	"2023_TEOS_XML_07A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_07A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_07A.zip"},
	"2023_TEOS_XML_08A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_08A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_08A.zip"},
	"2023_TEOS_XML_09A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_09A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_09A.zip"},
	"2023_TEOS_XML_10A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_10A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_10A.zip"},
	"2023_TEOS_XML_11A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_11A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_11A.zip"},
	"2023_TEOS_XML_12A": {Year: "2023", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2023/2023_TEOS_XML_12A.zip", DownloadDate: "2025-03-09", ArchiveName: "2023_TEOS_XML_12A.zip"},

	// 2024
	"2024_TEOS_XML_01A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_01A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_01A.zip"},
	"2024_TEOS_XML_02A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_02A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_02A.zip"},
	"2024_TEOS_XML_03A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_03A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_03A.zip"},
	"2024_TEOS_XML_04A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_04A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_04A.zip"},
	"2024_TEOS_XML_05A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_05A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_05A.zip"},
	"2024_TEOS_XML_06A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_06A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_06A.zip"},
	"2024_TEOS_XML_07A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_07A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_07A.zip"},
	"2024_TEOS_XML_08A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_08A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_08A.zip"},
	"2024_TEOS_XML_09A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_09A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_09A.zip"},
	"2024_TEOS_XML_10A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_10A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_10A.zip"},
	"2024_TEOS_XML_11A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_11A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_11A.zip"},
	"2024_TEOS_XML_12A": {Year: "2024", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2024/2024_TEOS_XML_12A.zip", DownloadDate: "2025-03-11", ArchiveName: "2024_TEOS_XML_12A.zip"},

	// 2025
	"2025_TEOS_XML_01A": {Year: "2025", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2025/2025_TEOS_XML_01A.zip", DownloadDate: "2025-04-29", ArchiveName: "2025_TEOS_XML_01A.zip"},
	"2025_TEOS_XML_02A": {Year: "2025", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2025/2025_TEOS_XML_02A.zip", DownloadDate: "2025-04-29", ArchiveName: "2025_TEOS_XML_02A.zip"},
	"2025_TEOS_XML_03A": {Year: "2025", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2025/2025_TEOS_XML_03A.zip", DownloadDate: "2025-04-29", ArchiveName: "2025_TEOS_XML_03A.zip"},
	"2025_TEOS_XML_04A": {Year: "2025", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2025/2025_TEOS_XML_04A.zip", DownloadDate: "2025-07-17", ArchiveName: "2025_TEOS_XML_04A.zip"},
	"2025_TEOS_XML_05A": {Year: "2025", Source: "https://apps.irs.gov/pub/epostcard/990/xml/2025/2025_TEOS_XML_05A.zip", DownloadDate: "2025-07-17", ArchiveName: "2025_TEOS_XML_05A.zip"},
}
