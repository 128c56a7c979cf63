// Contract interfaces of the deployed ticketing system, in the JSON ABI format
// accepted by abi.JSON. Overloaded functions keep their declaration order.
package contracts

// EventsABI is the input ABI of the events diamond facet.
const EventsABI = `[
	{"type":"function","name":"createEvent","inputs":[{"name":"maxTicketPerClient","type":"uint256"},{"name":"startDate","type":"uint256"},{"name":"endDate","type":"uint256"},{"name":"onlyWhiteListedUsers","type":"bool"},{"name":"tokenUri","type":"string"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"fetchEventById","inputs":[{"name":"eventId","type":"uint256"}],"outputs":[{"name":"","type":"tuple","components":[{"name":"startDate","type":"uint256"},{"name":"endDate","type":"uint256"},{"name":"maxTicketPerClient","type":"uint256"},{"name":"onlyWhiteListedUsers","type":"bool"},{"name":"areAllCategoryTicketsBuyable","type":"bool"},{"name":"status","type":"uint8"},{"name":"cashier","type":"address"},{"name":"postponeTime","type":"uint256"},{"name":"refundData","type":"tuple[]","components":[{"name":"date","type":"uint256"},{"name":"percentage","type":"uint256"}]}]}],"stateMutability":"view"},
	{"type":"function","name":"fetchAllEvents","inputs":[],"outputs":[{"name":"","type":"tuple[]","components":[{"name":"startDate","type":"uint256"},{"name":"endDate","type":"uint256"},{"name":"maxTicketPerClient","type":"uint256"},{"name":"onlyWhiteListedUsers","type":"bool"},{"name":"areAllCategoryTicketsBuyable","type":"bool"},{"name":"status","type":"uint8"},{"name":"cashier","type":"address"},{"name":"postponeTime","type":"uint256"},{"name":"refundData","type":"tuple[]","components":[{"name":"date","type":"uint256"},{"name":"percentage","type":"uint256"}]}]}],"stateMutability":"view"},
	{"type":"function","name":"fetchOwnedEvents","inputs":[],"outputs":[{"name":"","type":"uint256[]"}],"stateMutability":"view"},
	{"type":"function","name":"fetchAllEventIds","inputs":[],"outputs":[{"name":"","type":"uint256[]"}],"stateMutability":"view"},
	{"type":"function","name":"tokenURI","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"},
	{"type":"function","name":"removeEvent","inputs":[{"name":"eventId","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"updateEventTokenUri","inputs":[{"name":"eventId","type":"uint256"},{"name":"tokenUri","type":"string"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"addTeamMember","inputs":[{"name":"eventId","type":"uint256"},{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"removeTeamMember","inputs":[{"name":"eventId","type":"uint256"},{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"getEventMembers","inputs":[{"name":"eventId","type":"uint256"}],"outputs":[{"name":"","type":"tuple[]","components":[{"name":"account","type":"address"},{"name":"role","type":"bytes32"}]}],"stateMutability":"view"},
	{"type":"function","name":"setEventCashier","inputs":[{"name":"eventId","type":"uint256"},{"name":"oldCashier","type":"address"},{"name":"newCashier","type":"address"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"createTicketCategory","inputs":[{"name":"eventId","type":"uint256"},{"name":"cid","type":"string"},{"name":"saleStartDate","type":"uint256"},{"name":"saleEndDate","type":"uint256"},{"name":"ticketsCount","type":"uint256"},{"name":"ticketPrice","type":"uint256"},{"name":"hasPlaces","type":"bool"},{"name":"discountsTicketsCount","type":"uint256[]"},{"name":"discountsPercentage","type":"uint256[]"},{"name":"downPayment","type":"tuple","components":[{"name":"price","type":"uint256"},{"name":"finalAmountDate","type":"uint256"}]}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"updateCategory","inputs":[{"name":"eventId","type":"uint256"},{"name":"categoryId","type":"uint256"},{"name":"cid","type":"string"},{"name":"ticketPrice","type":"uint256"},{"name":"discountsTicketsCount","type":"uint256[]"},{"name":"discountsPercentage","type":"uint256[]"},{"name":"downPayment","type":"tuple","components":[{"name":"price","type":"uint256"},{"name":"finalAmountDate","type":"uint256"}]}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"removeCategory","inputs":[{"name":"eventId","type":"uint256"},{"name":"categoryId","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"addCategoryTicketsCount","inputs":[{"name":"eventId","type":"uint256"},{"name":"categoryId","type":"uint256"},{"name":"ticketsCount","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"removeCategoryTicketsCount","inputs":[{"name":"eventId","type":"uint256"},{"name":"categoryId","type":"uint256"},{"name":"ticketsCount","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"manageCategorySelling","inputs":[{"name":"eventId","type":"uint256"},{"name":"categoryId","type":"uint256"},{"name":"value","type":"bool"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"manageAllCategorySelling","inputs":[{"name":"eventId","type":"uint256"},{"name":"value","type":"bool"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"fetchCategoriesByEventId","inputs":[{"name":"eventId","type":"uint256"}],"outputs":[{"name":"","type":"tuple[]","components":[{"name":"id","type":"uint256"},{"name":"eventId","type":"uint256"},{"name":"cid","type":"string"},{"name":"saleStartDate","type":"uint256"},{"name":"saleEndDate","type":"uint256"},{"name":"ticketsCount","type":"uint256"},{"name":"ticketPrice","type":"uint256"},{"name":"discountsTicketsCount","type":"uint256[]"},{"name":"discountsPercentage","type":"uint256[]"},{"name":"downPayment","type":"tuple","components":[{"name":"price","type":"uint256"},{"name":"finalAmountDate","type":"uint256"}]},{"name":"hasPlaces","type":"bool"},{"name":"areTicketsBuyable","type":"bool"}]}],"stateMutability":"view"},
	{"type":"function","name":"updateCategorySaleDates","inputs":[{"name":"eventId","type":"uint256"},{"name":"categoryId","type":"uint256"},{"name":"saleStartDate","type":"uint256"},{"name":"saleEndDate","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"postponeEvent","inputs":[{"name":"eventId","type":"uint256"},{"name":"postponeTime","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"cancelEvent","inputs":[{"name":"eventId","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"withdrawFromCanceledEvent","inputs":[{"name":"eventId","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"event","name":"EventCreated","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"owner","type":"address","indexed":true},{"name":"tokenUri","type":"string","indexed":false}],"anonymous":false},
	{"type":"event","name":"EventUpdated","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"tokenUri","type":"string","indexed":false}],"anonymous":false},
	{"type":"event","name":"EventCanceled","inputs":[{"name":"eventId","type":"uint256","indexed":true}],"anonymous":false},
	{"type":"event","name":"EventPostponed","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"postponeTime","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"EventCashierUpdated","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"oldCashier","type":"address","indexed":true},{"name":"newCashier","type":"address","indexed":true}],"anonymous":false},
	{"type":"event","name":"CategoryCreated","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"categoryId","type":"uint256","indexed":true}],"anonymous":false},
	{"type":"event","name":"CategoryUpdated","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"categoryId","type":"uint256","indexed":true}],"anonymous":false},
	{"type":"event","name":"CategoryDeleted","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"categoryId","type":"uint256","indexed":true}],"anonymous":false},
	{"type":"event","name":"CategorySaleDatesUpdated","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"categoryId","type":"uint256","indexed":true},{"name":"saleStartDate","type":"uint256","indexed":false},{"name":"saleEndDate","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"CategorySellChanged","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"categoryId","type":"uint256","indexed":true},{"name":"value","type":"bool","indexed":false}],"anonymous":false},
	{"type":"event","name":"AllCategorySellChanged","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"value","type":"bool","indexed":false}],"anonymous":false},
	{"type":"event","name":"CategoryTicketsAdded","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"categoryId","type":"uint256","indexed":true},{"name":"ticketsCount","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"CategoryTicketsRemoved","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"categoryId","type":"uint256","indexed":true},{"name":"ticketsCount","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"RoleGranted","inputs":[{"name":"role","type":"bytes32","indexed":true},{"name":"account","type":"address","indexed":true},{"name":"sender","type":"address","indexed":true}],"anonymous":false},
	{"type":"event","name":"RoleRevoked","inputs":[{"name":"role","type":"bytes32","indexed":true},{"name":"account","type":"address","indexed":true},{"name":"sender","type":"address","indexed":true}],"anonymous":false}
]`

// TicketControllerABI is the input ABI of the ticket controller facet.
const TicketControllerABI = `[
	{"type":"function","name":"buyTickets","inputs":[{"name":"eventId","type":"uint256"},{"name":"categoryId","type":"uint256"},{"name":"priceData","type":"tuple[]","components":[{"name":"amount","type":"uint256"},{"name":"price","type":"uint256"}]},{"name":"place","type":"tuple[]","components":[{"name":"row","type":"uint256"},{"name":"seat","type":"uint256"}]},{"name":"tokenUris","type":"string[]"}],"outputs":[],"stateMutability":"payable"},
	{"type":"function","name":"buyTickets","inputs":[{"name":"eventCategoryData","type":"tuple[]","components":[{"name":"eventId","type":"uint256"},{"name":"categoryId","type":"uint256"}]},{"name":"priceData","type":"tuple[]","components":[{"name":"amount","type":"uint256"},{"name":"price","type":"uint256"}]},{"name":"place","type":"tuple[]","components":[{"name":"row","type":"uint256"},{"name":"seat","type":"uint256"}]},{"name":"tokenUris","type":"string[]"}],"outputs":[],"stateMutability":"payable"},
	{"type":"function","name":"addRefundDeadline","inputs":[{"name":"eventId","type":"uint256"},{"name":"refundData","type":"tuple","components":[{"name":"date","type":"uint256"},{"name":"percentage","type":"uint256"}]}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"returnTicket","inputs":[{"name":"ticketParams","type":"tuple","components":[{"name":"eventId","type":"uint256"},{"name":"categoryId","type":"uint256"},{"name":"ticketId","type":"uint256"}]}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"withdrawRefund","inputs":[{"name":"eventId","type":"uint256"},{"name":"ticketId","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"withdrawEventBalance","inputs":[{"name":"eventId","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"clipTicket","inputs":[{"name":"eventId","type":"uint256"},{"name":"ticketId","type":"uint256"},{"name":"signatureTimestamp","type":"uint256"},{"name":"signature","type":"bytes"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"bookTickets","inputs":[{"name":"eventId","type":"uint256"},{"name":"categoryData","type":"tuple[]","components":[{"name":"categoryId","type":"uint256"},{"name":"ticketAmount","type":"uint256"}]},{"name":"place","type":"tuple[]","components":[{"name":"row","type":"uint256"},{"name":"seat","type":"uint256"},{"name":"account","type":"address"}]},{"name":"tokenUris","type":"string[]"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"sendInvitation","inputs":[{"name":"eventId","type":"uint256"},{"name":"ticketIds","type":"uint256[]"},{"name":"accounts","type":"address[]"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"getAddressTicketIdsByEvent","inputs":[{"name":"eventId","type":"uint256"}],"outputs":[{"name":"","type":"uint256[]"}],"stateMutability":"view"},
	{"type":"function","name":"setTicketFeePercentage","inputs":[{"name":"feePercentage","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"withdrawFees","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"event","name":"TicketsBought","inputs":[{"name":"buyer","type":"address","indexed":true},{"name":"eventId","type":"uint256","indexed":true},{"name":"ticketIds","type":"uint256[]","indexed":false}],"anonymous":false},
	{"type":"event","name":"TicketsBooked","inputs":[{"name":"moderator","type":"address","indexed":true},{"name":"eventId","type":"uint256","indexed":true},{"name":"ticketIds","type":"uint256[]","indexed":false}],"anonymous":false},
	{"type":"event","name":"TicketClipped","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"ticketId","type":"uint256","indexed":true}],"anonymous":false},
	{"type":"event","name":"TicketRefunded","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"ticketId","type":"uint256","indexed":true},{"name":"owner","type":"address","indexed":true}],"anonymous":false},
	{"type":"event","name":"RefundWithdrawn","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"ticketId","type":"uint256","indexed":true},{"name":"account","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"RefundDateAdded","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"date","type":"uint256","indexed":false},{"name":"percentage","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"EventBalanceWithdrawn","inputs":[{"name":"eventId","type":"uint256","indexed":true},{"name":"cashier","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}],"anonymous":false}
]`

// TicketsABI is the input ABI of the tickets contract.
const TicketsABI = `[
	{"type":"function","name":"ownerOf","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"isConsumableBy","inputs":[{"name":"consumer","type":"address"},{"name":"assetId","type":"uint256"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"view"},
	{"type":"function","name":"getTicket","inputs":[{"name":"ticketId","type":"uint256"}],"outputs":[{"name":"","type":"tuple","components":[{"name":"eventId","type":"uint256"},{"name":"categoryId","type":"uint256"},{"name":"row","type":"uint256"},{"name":"seat","type":"uint256"},{"name":"tokenUri","type":"string"},{"name":"isUsed","type":"bool"}]}],"stateMutability":"view"},
	{"type":"event","name":"Locked","inputs":[{"name":"tokenId","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"Unlocked","inputs":[{"name":"tokenId","type":"uint256","indexed":false}],"anonymous":false}
]`

// MarketplaceABI is the input ABI of the secondary ticket marketplace.
const MarketplaceABI = `[
	{"type":"function","name":"fetchAllListedTicketIds","inputs":[],"outputs":[{"name":"","type":"uint256[]"}],"stateMutability":"view"},
	{"type":"function","name":"listTicket","inputs":[{"name":"ticketId","type":"uint256"},{"name":"price","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"updateListedTicketPrice","inputs":[{"name":"ticketId","type":"uint256"},{"name":"price","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"buyListedTicket","inputs":[{"name":"ticketId","type":"uint256"}],"outputs":[],"stateMutability":"payable"},
	{"type":"function","name":"buyMultipleListedTickets","inputs":[{"name":"ticketIds","type":"uint256[]"}],"outputs":[],"stateMutability":"payable"},
	{"type":"function","name":"cancelListedTicket","inputs":[{"name":"ticketId","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"getListedTicketById","inputs":[{"name":"ticketId","type":"uint256"}],"outputs":[{"name":"","type":"tuple","components":[{"name":"seller","type":"address"},{"name":"price","type":"uint256"},{"name":"isListed","type":"bool"}]}],"stateMutability":"view"},
	{"type":"function","name":"setTicketFeePercentage","inputs":[{"name":"feePercentage","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"withdrawFees","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"event","name":"TicketListed","inputs":[{"name":"ticketId","type":"uint256","indexed":true},{"name":"seller","type":"address","indexed":true},{"name":"price","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"ListedTicketBought","inputs":[{"name":"ticketId","type":"uint256","indexed":true},{"name":"buyer","type":"address","indexed":true},{"name":"price","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"ListedTicketCanceled","inputs":[{"name":"ticketId","type":"uint256","indexed":true}],"anonymous":false},
	{"type":"event","name":"ListedTicketPriceUpdated","inputs":[{"name":"ticketId","type":"uint256","indexed":true},{"name":"price","type":"uint256","indexed":false}],"anonymous":false}
]`
